package filerecord

type (
	CreateRequest struct {
		Alias        string `json:"alias"`
		Password     string `json:"password"`
		IpfsResponse string `json:"ipfsResponse"`
	}
	RetrieveRequest struct {
		Alias    string `json:"alias"`
		Password string `json:"password"`
	}
)
