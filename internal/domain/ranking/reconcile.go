package ranking

import (
	"sort"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
)

// Canonicalize lifts a flat club_name into the nested club:{name} shape the
// dashboard renders. Rows that already carry a nested club object pass
// through untouched.
func Canonicalize(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if nested, ok := row["club"].(map[string]any); ok {
			if stringValue(nested["name"]) != "" {
				out = append(out, row)
				continue
			}
		}
		name := stringValue(row["club_name"])
		if name == "" {
			out = append(out, row)
			continue
		}
		mapped := make(Row, len(row)+1)
		for k, v := range row {
			mapped[k] = v
		}
		mapped["club"] = map[string]any{"name": name}
		out = append(out, mapped)
	}
	return out
}

// PrevEntry is a prior day's rank and score for one club, keyed by the
// normalized club key.
type PrevEntry struct {
	Rank  int
	Score *float64
}

// PreviousEntries indexes a prior day's rows by normalized club key. Rows
// without a usable name are skipped; a missing rank_position falls back to
// the row's position in the (already ordered) list.
func PreviousEntries(rows []Row) map[string]PrevEntry {
	out := make(map[string]PrevEntry, len(rows))
	for i, row := range rows {
		name := row.DisplayName()
		if name == "" {
			continue
		}
		key := club.NormalizeKey(name)
		if _, exists := out[key]; exists {
			continue
		}
		rank, ok := row.Rank()
		if !ok || rank <= 0 {
			rank = i + 1
		}
		entry := PrevEntry{Rank: rank}
		if score, ok := row.Score(); ok {
			s := score
			entry.Score = &s
		}
		out[key] = entry
	}
	return out
}

// Delta is a club's rank movement between two compared days. Positive means
// the club rose.
type Delta struct {
	Name         string `json:"club"`
	Key          string `json:"-"`
	CurrentRank  int    `json:"current_rank"`
	PreviousRank int    `json:"previous_rank"`
	Delta        int    `json:"delta"`
}

// RankDeltas computes previous_rank - current_rank for every current row with
// a matching prior entry. Rows without a match are excluded; callers keep them
// in the main table with a null delta.
func RankDeltas(current []Row, previous map[string]PrevEntry) []Delta {
	if len(current) == 0 || len(previous) == 0 {
		return nil
	}

	out := make([]Delta, 0, len(current))
	for i, row := range current {
		name := row.DisplayName()
		if name == "" {
			continue
		}
		key := club.NormalizeKey(name)
		prev, ok := previous[key]
		if !ok {
			continue
		}
		rank, ok := row.Rank()
		if !ok || rank <= 0 {
			rank = i + 1
		}
		out = append(out, Delta{
			Name:         name,
			Key:          key,
			CurrentRank:  rank,
			PreviousRank: prev.Rank,
			Delta:        prev.Rank - rank,
		})
	}
	return out
}

// TopMovers splits deltas into the n biggest risers and n biggest fallers.
// Unchanged clubs appear in neither list.
func TopMovers(deltas []Delta, n int) (risers, fallers []Delta) {
	if n <= 0 {
		return nil, nil
	}
	for _, d := range deltas {
		switch {
		case d.Delta > 0:
			risers = append(risers, d)
		case d.Delta < 0:
			fallers = append(fallers, d)
		}
	}
	sort.SliceStable(risers, func(i, j int) bool { return risers[i].Delta > risers[j].Delta })
	sort.SliceStable(fallers, func(i, j int) bool { return fallers[i].Delta < fallers[j].Delta })
	if len(risers) > n {
		risers = risers[:n]
	}
	if len(fallers) > n {
		fallers = fallers[:n]
	}
	return risers, fallers
}

// Highlight names a club alongside the metric value that singled it out.
type Highlight struct {
	Club  string  `json:"club"`
	Value float64 `json:"value"`
}

// ScoreShift is a day-over-day score change for one club.
type ScoreShift struct {
	Club     string  `json:"club"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Delta    float64 `json:"delta"`
}

// Summary is the insights read model: the day's leader plus volume/sentiment
// extremes, and score shifts when a comparison day is available.
type Summary struct {
	Leader         *Highlight  `json:"leader"`
	TopVolume      *Highlight  `json:"top_volume"`
	BestSentiment  *Highlight  `json:"best_sentiment"`
	WorstSentiment *Highlight  `json:"worst_sentiment"`
	BiggestRise    *ScoreShift `json:"biggest_rise"`
	BiggestDrop    *ScoreShift `json:"biggest_drop"`
}

// Summarize scans one day's ordered rows for the insight highlights. The
// leader is the first named row (rows arrive score-ordered); score shifts are
// computed only for clubs present in both days.
func Summarize(current []Row, previous map[string]PrevEntry) Summary {
	var out Summary

	for _, row := range current {
		name := row.DisplayName()
		if name == "" {
			continue
		}

		if out.Leader == nil {
			leader := Highlight{Club: name}
			if score, ok := row.Score(); ok {
				leader.Value = score
			}
			out.Leader = &leader
		}

		if vol, ok := row.Volume(); ok {
			if out.TopVolume == nil || vol > out.TopVolume.Value {
				out.TopVolume = &Highlight{Club: name, Value: vol}
			}
		}
		if sent, ok := row.Sentiment(); ok {
			if out.BestSentiment == nil || sent > out.BestSentiment.Value {
				out.BestSentiment = &Highlight{Club: name, Value: sent}
			}
			if out.WorstSentiment == nil || sent < out.WorstSentiment.Value {
				out.WorstSentiment = &Highlight{Club: name, Value: sent}
			}
		}

		score, ok := row.Score()
		if !ok {
			continue
		}
		prev, found := previous[club.NormalizeKey(name)]
		if !found || prev.Score == nil {
			continue
		}
		shift := ScoreShift{Club: name, Previous: *prev.Score, Current: score, Delta: score - *prev.Score}
		if out.BiggestRise == nil || shift.Delta > out.BiggestRise.Delta {
			rise := shift
			out.BiggestRise = &rise
		}
		if out.BiggestDrop == nil || shift.Delta < out.BiggestDrop.Delta {
			drop := shift
			out.BiggestDrop = &drop
		}
	}

	return out
}
