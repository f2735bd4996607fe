package ports

import (
	"context"
	"io"

	"shareit-api/internal/infrastructure/pinata"
)

type PinClient interface {
	PinFile(ctx context.Context, fileName string, r io.Reader) (*pinata.PinResponse, error)
	GatewayURL(cid string) string
}
