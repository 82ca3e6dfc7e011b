package redisqueue

import (
	"context"
	"encoding/json"
	"log/slog"

	"shiplog/config"
	"shiplog/internal/domain/entity"
	"shiplog/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// offlineQueueRepository implements the domain's OfflineQueueRepository
// interface on a Redis list. Entries are stored as JSON in capture order.
type offlineQueueRepository struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewOfflineQueueRepository is the constructor for offlineQueueRepository.
func NewOfflineQueueRepository(client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.OfflineQueueRepository {
	return &offlineQueueRepository{
		client: client,
		key:    cfg.Redis.QueueKey,
		logger: logger,
	}
}

// Entries returns all queued entries in queue order. An undecodable element
// is skipped rather than poisoning the whole queue.
func (repo *offlineQueueRepository) Entries(ctx context.Context) ([]*entity.LogEntry, error) {
	raw, err := repo.client.LRange(ctx, repo.key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read offline queue")
	}

	entries := make([]*entity.LogEntry, 0, len(raw))
	for _, item := range raw {
		var entry entity.LogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			repo.logger.Warn("Skipping undecodable offline queue element",
				slog.Any("error", err))

			continue
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

// Enqueue appends entries to the queue.
func (repo *offlineQueueRepository) Enqueue(ctx context.Context, entries []*entity.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return errors.Wrap(err, "failed to encode offline entry")
		}
		values = append(values, data)
	}

	if err := repo.client.RPush(ctx, repo.key, values...).Err(); err != nil {
		return errors.Wrap(err, "failed to enqueue offline entries")
	}

	return nil
}

// Clear drops the whole queue.
func (repo *offlineQueueRepository) Clear(ctx context.Context) error {
	if err := repo.client.Del(ctx, repo.key).Err(); err != nil {
		return errors.Wrap(err, "failed to clear offline queue")
	}

	return nil
}
