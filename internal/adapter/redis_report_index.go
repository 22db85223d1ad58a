package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"interview-bank/internal/cache"
	"interview-bank/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisReportIndex keeps the latest report summaries in a capped Redis list,
// newest first.
type RedisReportIndex struct {
	client redis.Cmdable
	key    string
	limit  int64
	ttl    time.Duration
}

// NewRedisReportIndex expects a connected client. limit caps the list length;
// a zero ttl leaves the list without expiry.
func NewRedisReportIndex(client redis.Cmdable, limit int64, ttl time.Duration) domain.ReportIndex {
	if limit <= 0 {
		limit = 20
	}
	return &RedisReportIndex{
		client: client,
		key:    cache.RecentReportsKey(),
		limit:  limit,
		ttl:    ttl,
	}
}

// Record implements ReportIndex.Record
func (r *RedisReportIndex) Record(ctx context.Context, summary domain.ReportSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode report summary: %w", err)
	}
	if err := r.client.LPush(ctx, r.key, payload).Err(); err != nil {
		return err
	}
	if err := r.client.LTrim(ctx, r.key, 0, r.limit-1).Err(); err != nil {
		return err
	}
	if r.ttl > 0 {
		return r.client.Expire(ctx, r.key, r.ttl).Err()
	}
	return nil
}

// Recent implements ReportIndex.Recent. Entries that fail to decode are skipped.
func (r *RedisReportIndex) Recent(ctx context.Context, limit int64) ([]domain.ReportSummary, error) {
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}
	vals, err := r.client.LRange(ctx, r.key, 0, limit-1).Result()
	if err != nil {
		if err == redis.Nil {
			return []domain.ReportSummary{}, nil
		}
		return nil, err
	}

	summaries := make([]domain.ReportSummary, 0, len(vals))
	for _, v := range vals {
		var s domain.ReportSummary
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// NoopReportIndex is used when Redis is not configured.
type NoopReportIndex struct{}

func (NoopReportIndex) Record(context.Context, domain.ReportSummary) error {
	return nil
}

func (NoopReportIndex) Recent(context.Context, int64) ([]domain.ReportSummary, error) {
	return []domain.ReportSummary{}, nil
}
