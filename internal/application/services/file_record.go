package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shareit-api/internal/application/ports"
	domain "shareit-api/internal/domain/filerecord"
	"shareit-api/internal/domain/user"
	"shareit-api/internal/infrastructure/cache"
	"shareit-api/internal/infrastructure/mq"
	"shareit-api/internal/infrastructure/pinata"
	dto "shareit-api/internal/interface/api/rest/dto/filerecord"
)

var (
	ErrInvalidPinResponse = errors.New("invalid pinning response")
	ErrPinFailed          = errors.New("pinning service failed")
	ErrRecordNotFound     = errors.New("file not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
)

type FileRecordService struct {
	recordRepository domain.Repository
	userRepository   user.Repository
	recordCache      ports.RecordCache
	pin              ports.PinClient
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
	logger           *zap.Logger
}

func NewFileRecordService(
	recordRepository domain.Repository,
	userRepository user.Repository,
	recordCache ports.RecordCache,
	pin ports.PinClient,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.FileRecordService {
	return &FileRecordService{
		recordRepository: recordRepository,
		userRepository:   userRepository,
		recordCache:      recordCache,
		pin:              pin,
		mq:               rabbit,
		mCounter:         mCounter,
		logger:           logger,
	}
}

func (frs *FileRecordService) CreateFileRecord(
	ctx context.Context,
	ownerUUID user.UUID,
	alias, password, pinResponseJSON string,
) (*domain.FileRecord, error) {
	id, err := frs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	pr, err := pinata.ParsePinResponse([]byte(pinResponseJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPinResponse, err)
	}

	return frs.record(ctx, id, ownerUUID, alias, password, pr)
}

func (frs *FileRecordService) PinAndCreateFileRecord(
	ctx context.Context,
	ownerUUID user.UUID,
	alias, password string,
	in *multipart.FileHeader,
) (*domain.FileRecord, error) {
	id, err := frs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pr, err := frs.pin.PinFile(ctx, sanitizeFileName(in.Filename), f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPinFailed, err)
	}
	if pr.Name == "" {
		pr.Name = sanitizeFileName(in.Filename)
	}
	if pr.MimeType == "" {
		pr.MimeType = in.Header.Get("Content-Type")
	}
	if pr.PinSize == 0 {
		pr.PinSize = uint64(in.Size)
	}

	return frs.record(ctx, id, ownerUUID, alias, password, pr)
}

// record persists the pin under its alias and refreshes the owner's cache.
// Both uniqueness rules live in the store as unique constraints, so a true
// concurrent double-submit still yields exactly one record.
func (frs *FileRecordService) record(
	ctx context.Context,
	ownerID user.ID,
	ownerUUID user.UUID,
	alias, password string,
	pr *pinata.PinResponse,
) (*domain.FileRecord, error) {
	req, err := frs.fillRecord(pr, alias, password)
	if err != nil {
		return nil, err
	}

	out, err := frs.recordRepository.CreateFileRecord(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}

	// cache is best-effort: the record is durable already, so a cache error
	// must not fail the upload
	if err = frs.recordCache.PushRecord(ctx, ownerUUID, cache.FromDomain(out)); err != nil {
		frs.logger.Warn("failed to cache new record",
			zap.Stringer("owner_uuid", ownerUUID),
			zap.Error(err),
		)
	}

	frs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPost,
		UserID:  ownerUUID.String(),
		Payload: dto.ToResponseFileRecord(*out),
	}

	frs.mCounter.WithLabelValues("file_records_created_total").Inc()

	return out, nil
}

func (frs *FileRecordService) fillRecord(pr *pinata.PinResponse, alias, password string) (*domain.FileRecord, error) {
	fr := &domain.FileRecord{
		Alias:        strings.TrimSpace(alias),
		CID:          pr.IpfsHash,
		PinID:        pr.ID,
		PinSizeBytes: pr.PinSize,
		PinTimestamp: pr.Timestamp,
		FileName:     pr.Name,
		MimeType:     pr.MimeType,
		FileCount:    pr.NumberOfFiles,
		IsDuplicate:  pr.IsDuplicate,
		PublicURL:    frs.pin.GatewayURL(pr.IpfsHash),
	}

	if pw := strings.TrimSpace(password); pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		fr.PasswordHash = &h
	}

	return fr, nil
}

func (frs *FileRecordService) FindFileRecords(ctx context.Context, ownerUUID user.UUID) (domain.FileRecords, error) {
	entries, err := frs.recordCache.FetchRecords(ctx, ownerUUID)
	if err != nil {
		frs.logger.Warn("record cache read failed, falling back to store",
			zap.Stringer("owner_uuid", ownerUUID),
			zap.Error(err),
		)
	} else if len(entries) > 0 {
		frs.mCounter.WithLabelValues("file_record_cache_hits_total").Inc()
		return cache.ToDomainRecords(entries), nil
	}

	id, err := frs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	records, err := frs.recordRepository.FetchFileRecords(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		if err = frs.recordCache.ReplaceRecords(ctx, ownerUUID, cache.FromDomainRecords(records)); err != nil {
			frs.logger.Warn("failed to rebuild record cache",
				zap.Stringer("owner_uuid", ownerUUID),
				zap.Error(err),
			)
		}
	}

	return records, nil
}

func (frs *FileRecordService) RetrieveCID(ctx context.Context, ownerUUID user.UUID, alias, password string) (string, error) {
	id, err := frs.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return "", err
	}

	fr, err := frs.recordRepository.FetchFileRecordByAlias(ctx, id, strings.TrimSpace(alias))
	if err != nil {
		return "", err
	}
	if fr == nil {
		return "", ErrRecordNotFound
	}

	if fr.Protected() {
		if bcrypt.CompareHashAndPassword([]byte(*fr.PasswordHash), []byte(password)) != nil {
			return "", ErrIncorrectPassword
		}
	}

	frs.mCounter.WithLabelValues("file_records_retrieved_total").Inc()

	return fr.CID, nil
}
