package supabase

import (
	"context"
	"fmt"

	"github.com/pulsopublico/pulso-api/external/postgrest"
	"github.com/pulsopublico/pulso-api/internal/domain/metrics"
)

const (
	bucketsResource = "time_bucket_metrics"
	sourcesResource = "sources"

	maxBucketRows = 10000
	maxSourceRows = 1000
)

type MetricsRepository struct {
	client *postgrest.Client
}

func NewMetricsRepository(client *postgrest.Client) *MetricsRepository {
	return &MetricsRepository{client: client}
}

func (r *MetricsRepository) BucketsForDay(ctx context.Context, clubID, from, to string) ([]metrics.BucketMetric, error) {
	query := postgrest.NewQuery().
		Select("source_id,volume_raw,sentiment").
		Eq("club_id", sanitizeFilterValue(clubID)).
		Gte("bucket_start", from).
		Lt("bucket_start", to).
		Limit(maxBucketRows)

	rows, err := r.client.GetRows(ctx, bucketsResource, query)
	if err != nil {
		return nil, fmt.Errorf("fetch bucket metrics: %w", err)
	}

	out := make([]metrics.BucketMetric, 0, len(rows))
	for _, row := range rows {
		bucket := metrics.BucketMetric{SourceID: getString(row, "source_id")}
		if volume, ok := getFloat(row, "volume_raw"); ok {
			bucket.VolumeRaw = volume
		}
		if sentiment, ok := getFloat(row, "sentiment"); ok {
			s := sentiment
			bucket.Sentiment = &s
		}
		out = append(out, bucket)
	}
	return out, nil
}

type SourceRepository struct {
	client *postgrest.Client
}

func NewSourceRepository(client *postgrest.Client) *SourceRepository {
	return &SourceRepository{client: client}
}

func (r *SourceRepository) SourcesByID(ctx context.Context, ids []string) ([]metrics.Source, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sanitized := make([]string, 0, len(ids))
	for _, id := range ids {
		if cleaned := sanitizeFilterValue(id); cleaned != "" {
			sanitized = append(sanitized, cleaned)
		}
	}
	if len(sanitized) == 0 {
		return nil, nil
	}

	query := postgrest.NewQuery().
		Select("id,code,name").
		In("id", sanitized).
		Limit(maxSourceRows)

	rows, err := r.client.GetRows(ctx, sourcesResource, query)
	if err != nil {
		return nil, fmt.Errorf("fetch sources: %w", err)
	}

	out := make([]metrics.Source, 0, len(rows))
	for _, row := range rows {
		source := metrics.Source{
			ID:   getString(row, "id"),
			Code: getString(row, "code", "name"),
		}
		if source.ID == "" {
			continue
		}
		out = append(out, source)
	}
	return out, nil
}
