package metrics_test

import (
	"math"
	"testing"

	"github.com/pulsopublico/pulso-api/internal/domain/metrics"
)

func sentiment(v float64) *float64 { return &v }

func TestAggregateBySourceSkipsMissingSentiment(t *testing.T) {
	t.Parallel()

	buckets := []metrics.BucketMetric{
		{SourceID: "s1", VolumeRaw: 10, Sentiment: sentiment(0.2)},
		{SourceID: "s1", VolumeRaw: 5, Sentiment: nil},
		{SourceID: "s1", VolumeRaw: 3, Sentiment: sentiment(0.6)},
	}
	out := metrics.AggregateBySource(buckets, []metrics.Source{{ID: "s1", Code: "twitter"}})

	if len(out) != 1 {
		t.Fatalf("aggregates = %d, want 1", len(out))
	}
	if out[0].SourceCode != "twitter" {
		t.Fatalf("source code = %q, want twitter", out[0].SourceCode)
	}
	if out[0].VolumeTotal != 18 {
		t.Fatalf("volume = %v, want 18", out[0].VolumeTotal)
	}
	if out[0].SentimentAvg == nil || math.Abs(*out[0].SentimentAvg-0.4) > 1e-9 {
		t.Fatalf("sentiment avg = %v, want 0.4", out[0].SentimentAvg)
	}
}

func TestAggregateBySourceNilSentimentWhenNoneFinite(t *testing.T) {
	t.Parallel()

	buckets := []metrics.BucketMetric{
		{SourceID: "s1", VolumeRaw: 7, Sentiment: nil},
		{SourceID: "s1", VolumeRaw: 2, Sentiment: sentiment(math.NaN())},
	}
	out := metrics.AggregateBySource(buckets, nil)

	if len(out) != 1 {
		t.Fatalf("aggregates = %d, want 1", len(out))
	}
	if out[0].SentimentAvg != nil {
		t.Fatalf("sentiment avg = %v, want nil", *out[0].SentimentAvg)
	}
	if out[0].SourceCode != "s1" {
		t.Fatalf("source code fallback = %q, want s1", out[0].SourceCode)
	}
}

func TestAggregateBySourceConservesVolume(t *testing.T) {
	t.Parallel()

	buckets := []metrics.BucketMetric{
		{SourceID: "a", VolumeRaw: 1},
		{SourceID: "b", VolumeRaw: 4},
		{SourceID: "a", VolumeRaw: 2.5},
		{SourceID: "c", VolumeRaw: 0},
	}
	out := metrics.AggregateBySource(buckets, nil)

	var total float64
	for _, agg := range out {
		total += agg.VolumeTotal
	}
	if total != 7.5 {
		t.Fatalf("total volume = %v, want 7.5", total)
	}
	if out[0].SourceID != "b" {
		t.Fatalf("order[0] = %q, want b (highest volume first)", out[0].SourceID)
	}
}

func TestAggregateBySourceEmpty(t *testing.T) {
	t.Parallel()

	if out := metrics.AggregateBySource(nil, nil); out != nil {
		t.Fatalf("aggregates = %#v, want nil", out)
	}
}
