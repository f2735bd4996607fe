package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shareit-api/config"
	"shareit-api/internal/domain/user"
)

const (
	// RecordTTL bounds how stale a cached list may get before readers fall
	// back to the store.
	RecordTTL = 5 * time.Minute
	// MaxCachedRecords caps the per-owner list; older entries are trimmed off.
	MaxCachedRecords = 50
)

// Entry is the serialized file record summary held in the per-owner list.
type Entry struct {
	UUID         uuid.UUID `json:"uuid"`
	Alias        string    `json:"alias"`
	CID          string    `json:"cid"`
	FileName     string    `json:"file_name"`
	MimeType     string    `json:"mime_type"`
	PinSizeBytes uint64    `json:"pin_size_bytes"`
	PublicURL    string    `json:"public_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordCache keeps one Redis list per owner, newest record first. The store
// stays authoritative; every operation here is a performance shortcut.
type RecordCache struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *RecordCache {
	return &RecordCache{client: client}
}

func NewClient(ctx context.Context, logger *zap.Logger, cfg config.Cache, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("redis connected successfully")

	return client, nil
}

func recordsKey(owner user.UUID) string {
	return "files:" + owner.String()
}

// FetchRecords returns the cached list, newest first. An absent or empty key
// is a miss, reported as (nil, nil).
func (rc *RecordCache) FetchRecords(ctx context.Context, owner user.UUID) ([]Entry, error) {
	vals, err := rc.client.LRange(ctx, recordsKey(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read record cache: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	entries := make([]Entry, 0, len(vals))
	for _, v := range vals {
		var e Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached record: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// PushRecord prepends one entry, trims the list to its cap and extends the
// TTL. The three commands run inside MULTI/EXEC so a concurrent reader sees
// either the old list or the new one, never an untrimmed middle state.
func (rc *RecordCache) PushRecord(ctx context.Context, owner user.UUID, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	key := recordsKey(owner)
	_, err = rc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, MaxCachedRecords-1)
		pipe.Expire(ctx, key, RecordTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push record to cache: %w", err)
	}

	return nil
}

// ReplaceRecords rebuilds the whole list from a store read, preserving the
// given newest-first order. Rebuild and trim are one transaction for the same
// reason as PushRecord.
func (rc *RecordCache) ReplaceRecords(ctx context.Context, owner user.UUID, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	vals := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		vals = append(vals, data)
	}

	key := recordsKey(owner)
	_, err := rc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, vals...)
		pipe.LTrim(ctx, key, 0, MaxCachedRecords-1)
		pipe.Expire(ctx, key, RecordTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to rebuild record cache: %w", err)
	}

	return nil
}
