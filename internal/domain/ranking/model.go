package ranking

import (
	"math"
	"strconv"
	"strings"
)

// DayRecord is one club's entry for one aggregation day, produced by the
// external scoring pipeline and read-only here. Pointer fields stay nil when
// the backing row omits or nulls the value.
type DayRecord struct {
	ClubID         string
	ClubName       string
	Date           string
	Score          *float64
	VolumeTotal    *float64
	SentimentScore *float64
	RankPosition   *int
}

// SeriesPoint is one plottable (date, value) pair of a club's score history.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Row is a ranking row in whatever column shape the backend resource exposed.
// The select parameter passes through to the backend, so the key set is not
// fixed; accessors below tolerate the known field-name variants.
type Row map[string]any

func (r Row) DisplayName() string {
	if nested, ok := r["club"].(map[string]any); ok {
		if name := stringValue(nested["name"]); name != "" {
			return name
		}
	}
	for _, key := range []string{"club_name", "name", "label"} {
		if name := stringValue(r[key]); name != "" {
			return name
		}
	}
	if name := stringValue(r["club"]); name != "" {
		return name
	}
	return ""
}

func (r Row) Score() (float64, bool) {
	for _, key := range []string{"score", "iap_score", "iap"} {
		if v, ok := floatValue(r[key]); ok {
			return v, true
		}
	}
	return 0, false
}

func (r Row) Volume() (float64, bool) {
	return floatValue(r["volume_total"])
}

func (r Row) Sentiment() (float64, bool) {
	return floatValue(r["sentiment_score"])
}

func (r Row) Rank() (int, bool) {
	v, ok := floatValue(r["rank_position"])
	if !ok {
		return 0, false
	}
	return int(v), true
}

func (r Row) Date() string {
	for _, key := range []string{"aggregation_date", "bucket_date", "ranking_date", "metric_date", "day", "date"} {
		if v := stringValue(r[key]); v != "" {
			if len(v) > 10 {
				return v[:10]
			}
			return v
		}
	}
	return ""
}

func stringValue(raw any) string {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == math.Trunc(typed) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

func floatValue(raw any) (float64, bool) {
	switch typed := raw.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0, false
		}
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(typed), ",", "."), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
