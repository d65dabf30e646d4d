package metrics

import "context"

// BucketMetric is one time-bucketed measurement for a club, attributed to a
// collection source. Sentiment is nil when the bucket carried no usable value.
type BucketMetric struct {
	SourceID  string
	VolumeRaw float64
	Sentiment *float64
}

// Source is a collection source's identity row.
type Source struct {
	ID   string
	Code string
}

// SourceAggregate is one source's share of a club's day, volume summed and
// sentiment averaged over the buckets that reported one.
type SourceAggregate struct {
	SourceID     string   `json:"source_id"`
	SourceCode   string   `json:"source_code"`
	VolumeTotal  float64  `json:"volume_total"`
	SentimentAvg *float64 `json:"sentiment_avg"`
}

// Repository reads raw bucket metrics for a club inside a half-open UTC
// window [from, to).
type Repository interface {
	BucketsForDay(ctx context.Context, clubID, from, to string) ([]BucketMetric, error)
}

// SourceRepository resolves source identity rows by ID.
type SourceRepository interface {
	SourcesByID(ctx context.Context, ids []string) ([]Source, error)
}
