package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"shareit-api/config"
)

const pinFileEndpoint = "/pinning/pinFileToIPFS"

var ErrMissingCID = errors.New("pin response has no content identifier")

// PinResponse is Pinata's answer to a successful pin. The browser flow sends
// it back to us verbatim, the server-side flow receives it live.
type PinResponse struct {
	ID            string    `json:"ID"`
	IpfsHash      string    `json:"IpfsHash"`
	PinSize       uint64    `json:"PinSize"`
	Timestamp     time.Time `json:"Timestamp"`
	Name          string    `json:"Name"`
	MimeType      string    `json:"MimeType"`
	NumberOfFiles int       `json:"NumberOfFiles"`
	IsDuplicate   bool      `json:"isDuplicate"`
}

// ParsePinResponse decodes a serialized pin response and rejects one without
// a CID. A zero Timestamp is filled with the current time, older Pinata
// payloads omit it.
func ParsePinResponse(data []byte) (*PinResponse, error) {
	var pr PinResponse
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse pin response: %w", err)
	}
	if pr.IpfsHash == "" {
		return nil, ErrMissingCID
	}
	if pr.Timestamp.IsZero() {
		pr.Timestamp = time.Now().UTC()
	}
	if pr.NumberOfFiles == 0 {
		pr.NumberOfFiles = 1
	}

	return &pr, nil
}

type Client struct {
	logger     *zap.Logger
	httpc      *http.Client
	baseURL    string
	gatewayURL string
	jwt        string
}

func New(logger *zap.Logger, cfg config.Pinata) *Client {
	return &Client{
		logger:     logger,
		httpc:      &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.APIBaseURL,
		gatewayURL: cfg.GatewayURL,
		jwt:        cfg.JWT,
	}
}

// PinFile streams one file to Pinata and returns its pin response. Failures
// are not retried here, the caller reports the upload as failed.
func (c *Client) PinFile(ctx context.Context, fileName string, r io.Reader) (*PinResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build pin request: %w", err)
	}
	if _, err = io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("failed to buffer file for pinning: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish pin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pinFileEndpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.jwt)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pin request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read pin response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("pinata rejected the pin",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return nil, fmt.Errorf("pinata returned status %d", resp.StatusCode)
	}

	return ParsePinResponse(raw)
}

// GatewayURL builds the public download URL for a pinned CID.
func (c *Client) GatewayURL(cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", c.gatewayURL, cid)
}
