package metrics

import (
	"math"
	"sort"
)

// AggregateBySource folds raw buckets into per-source totals. Volume always
// sums; sentiment averages only the finite values, so a source whose buckets
// never reported sentiment ends up with a nil average rather than a zero.
// Results come back ordered by volume descending.
func AggregateBySource(buckets []BucketMetric, sources []Source) []SourceAggregate {
	if len(buckets) == 0 {
		return nil
	}

	codes := make(map[string]string, len(sources))
	for _, s := range sources {
		codes[s.ID] = s.Code
	}

	type acc struct {
		volume       float64
		sentimentSum float64
		sentimentN   int
	}
	byID := make(map[string]*acc, len(buckets))
	order := make([]string, 0, len(buckets))
	for _, b := range buckets {
		a, ok := byID[b.SourceID]
		if !ok {
			a = &acc{}
			byID[b.SourceID] = a
			order = append(order, b.SourceID)
		}
		a.volume += b.VolumeRaw
		if b.Sentiment != nil && !math.IsNaN(*b.Sentiment) && !math.IsInf(*b.Sentiment, 0) {
			a.sentimentSum += *b.Sentiment
			a.sentimentN++
		}
	}

	out := make([]SourceAggregate, 0, len(byID))
	for _, id := range order {
		a := byID[id]
		agg := SourceAggregate{
			SourceID:    id,
			SourceCode:  codes[id],
			VolumeTotal: a.volume,
		}
		if agg.SourceCode == "" {
			agg.SourceCode = id
		}
		if a.sentimentN > 0 {
			avg := a.sentimentSum / float64(a.sentimentN)
			agg.SentimentAvg = &avg
		}
		out = append(out, agg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].VolumeTotal > out[j].VolumeTotal })
	return out
}
