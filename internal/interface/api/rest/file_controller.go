package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shareit-api/internal/application/ports"
	"shareit-api/internal/application/services"
	domainUser "shareit-api/internal/domain/user"
	pgfilerecord "shareit-api/internal/infrastructure/db/postgres/filerecord"
	"shareit-api/internal/infrastructure/jwt"
	dto "shareit-api/internal/interface/api/rest/dto/filerecord"
	"shareit-api/internal/interface/api/rest/middleware"
	"shareit-api/internal/interface/api/rest/validator"
)

// 25MB, Pinata's free-tier per-file ceiling
const maxPinSize = int64(25 << 20)

type FileController struct {
	fileRecordService ports.FileRecordService
	logger            *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileRecordService ports.FileRecordService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileRecordService: fileRecordService,
		logger:            logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.POST(RouteFiles, auth, fc.CreateFileRecordHandler)
	r.GET(RouteFiles, auth, fc.GetFileRecordsHandler)
	r.POST(RouteFileRetrieve, auth, fc.RetrieveFileHandler)
	r.POST(RouteFilePin, auth, fc.PinFileHandler)

	return fc
}

func ownerUUID(c *gin.Context) (domainUser.UUID, bool) {
	ok, id := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return id, false
	}
	return id, true
}

func (fc *FileController) CreateFileRecordHandler(c *gin.Context) {
	owner, ok := ownerUUID(c)
	if !ok {
		return
	}

	var req dto.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateCreateFile(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	fr, err := fc.fileRecordService.CreateFileRecord(
		c.Request.Context(), owner, req.Alias, req.Password, req.IpfsResponse)
	if err != nil {
		fc.writeCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponseFileRecord(*fr))
}

func (fc *FileController) GetFileRecordsHandler(c *gin.Context) {
	owner, ok := ownerUUID(c)
	if !ok {
		return
	}

	records, err := fc.fileRecordService.FindFileRecords(c.Request.Context(), owner)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFileRecords() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ResponseData{
		Data: dto.ToResponseFileRecords(records),
	})
}

func (fc *FileController) RetrieveFileHandler(c *gin.Context) {
	owner, ok := ownerUUID(c)
	if !ok {
		return
	}

	var req dto.RetrieveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRetrieve(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cid, err := fc.fileRecordService.RetrieveCID(c.Request.Context(), owner, req.Alias, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrIncorrectPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to retrieve the file"},
			)
			fc.logger.Error("RetrieveCID() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.RetrieveResponse{CID: cid})
}

func (fc *FileController) PinFileHandler(c *gin.Context) {
	owner, ok := ownerUUID(c)
	if !ok {
		return
	}

	alias := c.PostForm("alias")
	password := c.PostForm("password")
	if errs := validator.ValidatePinForm(alias, password); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxPinSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	fr, err := fc.fileRecordService.PinAndCreateFileRecord(
		c.Request.Context(), owner, alias, password, fh)
	if err != nil {
		if errors.Is(err, services.ErrPinFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "pinning service failed"})
			fc.logger.Error("PinAndCreateFileRecord() error", zap.Error(err))
			return
		}
		fc.writeCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponseFileRecord(*fr))
}

func (fc *FileController) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgfilerecord.ErrAliasAlreadyExists),
		errors.Is(err, pgfilerecord.ErrContentAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidPinResponse):
		// an unparsable pin response means the upload itself failed
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid pinning response"})
		fc.logger.Error("CreateFileRecord() error", zap.Error(err))
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a file"},
		)
		fc.logger.Error("CreateFileRecord() error", zap.Error(err))
	}
}
