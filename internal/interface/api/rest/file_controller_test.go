// file_controller_test.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shareit-api/internal/application/ports"
	"shareit-api/internal/application/services"
	domainFile "shareit-api/internal/domain/filerecord"
	domainUser "shareit-api/internal/domain/user"
	pgfilerecord "shareit-api/internal/infrastructure/db/postgres/filerecord"
	jwtSvc "shareit-api/internal/infrastructure/jwt"
)

type FakeFileRecordService struct {
	CreateFileRecordFunc       func(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pinResponseJSON string) (*domainFile.FileRecord, error)
	PinAndCreateFileRecordFunc func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string, in *multipart.FileHeader) (*domainFile.FileRecord, error)
	FindFileRecordsFunc        func(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.FileRecords, error)
	RetrieveCIDFunc            func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string) (string, error)
}

func (f *FakeFileRecordService) CreateFileRecord(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pinResponseJSON string) (*domainFile.FileRecord, error) {
	if f.CreateFileRecordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFileRecordFunc(ctx, ownerUUID, alias, password, pinResponseJSON)
}
func (f *FakeFileRecordService) PinAndCreateFileRecord(ctx context.Context, ownerUUID domainUser.UUID, alias, password string, in *multipart.FileHeader) (*domainFile.FileRecord, error) {
	if f.PinAndCreateFileRecordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.PinAndCreateFileRecordFunc(ctx, ownerUUID, alias, password, in)
}
func (f *FakeFileRecordService) FindFileRecords(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.FileRecords, error) {
	if f.FindFileRecordsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileRecordsFunc(ctx, ownerUUID)
}
func (f *FakeFileRecordService) RetrieveCID(ctx context.Context, ownerUUID domainUser.UUID, alias, password string) (string, error) {
	if f.RetrieveCIDFunc == nil {
		return "", errors.New("not used")
	}
	return f.RetrieveCIDFunc(ctx, ownerUUID, alias, password)
}

func SignJWT(secret, userID, email string, exp time.Duration) (string, error) {
	type Claims struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func setupRouterFC(t *testing.T, frs ports.FileRecordService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	secret := "test-secret"
	j := jwtSvc.New(secret)

	NewFileController(r, frs, zap.NewNop(), j)

	return r, secret
}

func doJSONReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipartReq(t *testing.T, r *gin.Engine, path string, fields map[string]string, fileName string, fileContent []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, _ = fw.Write(fileContent)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func withAuth(t *testing.T, userID string) map[string]string {
	t.Helper()
	tok, err := SignJWT("test-secret", userID, "u@example.com", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

const validPin = `{"IpfsHash":"QmHash","PinSize":10,"Name":"doc.pdf"}`

func TestFileController_CreateFileRecordHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		body       any
		mockFRS    func() ports.FileRecordService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing Authorization",
			headers:    nil,
			body:       map[string]string{"alias": "a", "ipfsResponse": validPin},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "401 token without uuid subject",
			headers:    withAuth(t, "not-a-uuid"),
			body:       map[string]string{"alias": "a", "ipfsResponse": validPin},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token",
		},
		{
			name:       "400 invalid json",
			headers:    withAuth(t, okID.String()),
			body:       `{"alias":`,
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid json",
		},
		{
			name:       "400 missing alias",
			headers:    withAuth(t, okID.String()),
			body:       map[string]string{"ipfsResponse": validPin},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:       "400 missing ipfsResponse",
			headers:    withAuth(t, okID.String()),
			body:       map[string]string{"alias": "a"},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "409 alias conflict",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "taken", "ipfsResponse": validPin},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					CreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pin string) (*domainFile.FileRecord, error) {
						return nil, pgfilerecord.ErrAliasAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    "alias already exists",
		},
		{
			name:    "409 duplicate content",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "new", "ipfsResponse": validPin},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					CreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pin string) (*domainFile.FileRecord, error) {
						return nil, pgfilerecord.ErrContentAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    "duplicate content",
		},
		{
			name:    "500 malformed pin response",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "a", "ipfsResponse": `{"bad":`},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					CreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pin string) (*domainFile.FileRecord, error) {
						return nil, services.ErrInvalidPinResponse
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "invalid pinning response",
		},
		{
			name:    "500 service error",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "a", "ipfsResponse": validPin},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					CreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pin string) (*domainFile.FileRecord, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create a file",
		},
		{
			name:    "201 success",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "my-doc", "password": "pw", "ipfsResponse": validPin},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					CreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password, pin string) (*domainFile.FileRecord, error) {
						assert.Equal(t, okID, ownerUUID)
						assert.Equal(t, "my-doc", alias)
						assert.Equal(t, "pw", password)
						return &domainFile.FileRecord{Alias: alias, CID: "QmHash"}, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
			wantErr:    "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterFC(t, tt.mockFRS())
			rr := doJSONReq(t, r, http.MethodPost, RouteFiles, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestFileController_GetFileRecordsHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		mockFRS    func() ports.FileRecordService
		wantStatus int
		wantLen    int
	}{
		{
			name:       "401 missing Authorization",
			headers:    nil,
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "500 service error",
			headers: withAuth(t, okID.String()),
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					FindFileRecordsFunc: func(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.FileRecords, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:    "200 with records",
			headers: withAuth(t, okID.String()),
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					FindFileRecordsFunc: func(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.FileRecords, error) {
						return domainFile.FileRecords{
							{Alias: "a", CID: "QmA"},
							{Alias: "b", CID: "QmB"},
						}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:    "200 empty list",
			headers: withAuth(t, okID.String()),
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					FindFileRecordsFunc: func(ctx context.Context, ownerUUID domainUser.UUID) (domainFile.FileRecords, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterFC(t, tt.mockFRS())
			rr := doJSONReq(t, r, http.MethodGet, RouteFiles, nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var resp struct {
					Data []map[string]any `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Data, tt.wantLen)
			}
		})
	}
}

func TestFileController_RetrieveFileHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		body       any
		mockFRS    func() ports.FileRecordService
		wantStatus int
		wantErr    string
		wantCID    string
	}{
		{
			name:       "401 missing Authorization",
			headers:    nil,
			body:       map[string]string{"alias": "a"},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 missing alias",
			headers:    withAuth(t, okID.String()),
			body:       map[string]string{"password": "pw"},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "404 unknown alias",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "missing"},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					RetrieveCIDFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string) (string, error) {
						return "", services.ErrRecordNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "file not found",
		},
		{
			name:    "401 wrong password",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "locked", "password": "guess"},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					RetrieveCIDFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string) (string, error) {
						return "", services.ErrIncorrectPassword
					},
				}
			},
			wantStatus: http.StatusUnauthorized,
			wantErr:    "incorrect password",
		},
		{
			name:    "500 service error",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "a"},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					RetrieveCIDFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string) (string, error) {
						return "", errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to retrieve the file",
		},
		{
			name:    "200 success",
			headers: withAuth(t, okID.String()),
			body:    map[string]string{"alias": "locked", "password": "letmein"},
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					RetrieveCIDFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string) (string, error) {
						assert.Equal(t, "locked", alias)
						assert.Equal(t, "letmein", password)
						return "QmLocked", nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantCID:    "QmLocked",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterFC(t, tt.mockFRS())
			rr := doJSONReq(t, r, http.MethodPost, RouteFileRetrieve, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantCID != "" {
				assert.Equal(t, tt.wantCID, resp["cid"])
			}
		})
	}
}

func TestFileController_PinFileHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		headers    map[string]string
		fields     map[string]string
		fileName   string
		fileBytes  []byte
		mockFRS    func() ports.FileRecordService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing Authorization",
			headers:    nil,
			fields:     map[string]string{"alias": "a"},
			fileName:   "doc.pdf",
			fileBytes:  []byte("pdf"),
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 missing alias",
			headers:    withAuth(t, okID.String()),
			fields:     nil,
			fileName:   "doc.pdf",
			fileBytes:  []byte("pdf"),
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:       "400 file is required",
			headers:    withAuth(t, okID.String()),
			fields:     map[string]string{"alias": "a"},
			fileName:   "",
			fileBytes:  nil,
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "file is required",
		},
		{
			name:       "413 empty file",
			headers:    withAuth(t, okID.String()),
			fields:     map[string]string{"alias": "a"},
			fileName:   "empty.txt",
			fileBytes:  []byte{},
			mockFRS:    func() ports.FileRecordService { return &FakeFileRecordService{} },
			wantStatus: http.StatusRequestEntityTooLarge,
			wantErr:    "file too large or empty",
		},
		{
			name:      "502 pinning failure",
			headers:   withAuth(t, okID.String()),
			fields:    map[string]string{"alias": "a"},
			fileName:  "doc.pdf",
			fileBytes: []byte("content"),
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					PinAndCreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string, in *multipart.FileHeader) (*domainFile.FileRecord, error) {
						return nil, services.ErrPinFailed
					},
				}
			},
			wantStatus: http.StatusBadGateway,
			wantErr:    "pinning service failed",
		},
		{
			name:      "409 alias conflict",
			headers:   withAuth(t, okID.String()),
			fields:    map[string]string{"alias": "taken"},
			fileName:  "doc.pdf",
			fileBytes: []byte("content"),
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					PinAndCreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string, in *multipart.FileHeader) (*domainFile.FileRecord, error) {
						return nil, pgfilerecord.ErrAliasAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantErr:    "alias already exists",
		},
		{
			name:      "201 success",
			headers:   withAuth(t, okID.String()),
			fields:    map[string]string{"alias": "photo", "password": "pw"},
			fileName:  "photo.png",
			fileBytes: []byte("png-bytes"),
			mockFRS: func() ports.FileRecordService {
				return &FakeFileRecordService{
					PinAndCreateFileRecordFunc: func(ctx context.Context, ownerUUID domainUser.UUID, alias, password string, in *multipart.FileHeader) (*domainFile.FileRecord, error) {
						assert.Equal(t, "photo", alias)
						assert.Equal(t, "pw", password)
						assert.Equal(t, "photo.png", in.Filename)
						return &domainFile.FileRecord{Alias: alias, CID: "QmPhoto"}, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
			wantErr:    "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterFC(t, tt.mockFRS())
			rr := doMultipartReq(t, r, RouteFilePin, tt.fields, tt.fileName, tt.fileBytes, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}
