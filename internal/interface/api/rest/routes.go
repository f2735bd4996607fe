package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth               = RouteApiV1 + "/auth"
	RouteAuthGoogle         = RouteAuth + "/google"
	RouteAuthGoogleCallback = RouteAuthGoogle + "/callback"

	// files
	RouteFiles        = RouteApiV1 + "/files"
	RouteFilePin      = RouteFiles + "/pin"
	RouteFileRetrieve = RouteFiles + "/retrieve"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
