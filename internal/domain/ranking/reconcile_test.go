package ranking_test

import (
	"testing"

	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

func floatPtr(v float64) *float64 { return &v }

func TestCanonicalizeMapsFlatClubName(t *testing.T) {
	t.Parallel()

	rows := ranking.Canonicalize([]ranking.Row{
		{"club_name": "Flamengo", "score": 91.0},
	})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	nested, ok := rows[0]["club"].(map[string]any)
	if !ok {
		t.Fatalf("club not mapped: %#v", rows[0])
	}
	if nested["name"] != "Flamengo" {
		t.Fatalf("club.name = %v, want Flamengo", nested["name"])
	}
	if rows[0]["club_name"] != "Flamengo" {
		t.Fatalf("original club_name dropped: %#v", rows[0])
	}
}

func TestCanonicalizeKeepsNestedClub(t *testing.T) {
	t.Parallel()

	in := ranking.Row{"club": map[string]any{"name": "Palmeiras"}, "club_name": "wrong"}
	rows := ranking.Canonicalize([]ranking.Row{in})
	if got := rows[0].DisplayName(); got != "Palmeiras" {
		t.Fatalf("DisplayName = %q, want Palmeiras", got)
	}
}

func TestRankDeltasTwoDayComparison(t *testing.T) {
	t.Parallel()

	previous := ranking.PreviousEntries([]ranking.Row{
		{"club_name": "B", "rank_position": 1.0, "score": 85.0},
		{"club_name": "A", "rank_position": 2.0, "score": 80.0},
	})
	current := []ranking.Row{
		{"club_name": "A", "score": 90.0},
		{"club_name": "B", "score": 80.0},
	}

	deltas := ranking.RankDeltas(current, previous)
	if len(deltas) != 2 {
		t.Fatalf("deltas = %d, want 2", len(deltas))
	}
	byName := map[string]ranking.Delta{}
	for _, d := range deltas {
		byName[d.Name] = d
	}
	if byName["A"].Delta != 1 {
		t.Fatalf("delta A = %d, want 1", byName["A"].Delta)
	}
	if byName["B"].Delta != -1 {
		t.Fatalf("delta B = %d, want -1", byName["B"].Delta)
	}
}

func TestRankDeltasSumToZeroOnSwap(t *testing.T) {
	t.Parallel()

	// Same clubs on both days means every rise is matched by a fall.
	prevRows := []ranking.Row{
		{"club_name": "A"}, {"club_name": "B"}, {"club_name": "C"},
	}
	currRows := []ranking.Row{
		{"club_name": "C"}, {"club_name": "A"}, {"club_name": "B"},
	}

	sum := 0
	for _, d := range ranking.RankDeltas(currRows, ranking.PreviousEntries(prevRows)) {
		sum += d.Delta
	}
	if sum != 0 {
		t.Fatalf("delta sum = %d, want 0", sum)
	}
}

func TestRankDeltasSkipsUnmatchedClubs(t *testing.T) {
	t.Parallel()

	previous := ranking.PreviousEntries([]ranking.Row{{"club_name": "A"}})
	current := []ranking.Row{{"club_name": "A"}, {"club_name": "Newcomer"}}

	deltas := ranking.RankDeltas(current, previous)
	if len(deltas) != 1 || deltas[0].Name != "A" {
		t.Fatalf("deltas = %#v, want only A", deltas)
	}
}

func TestTopMovers(t *testing.T) {
	t.Parallel()

	deltas := []ranking.Delta{
		{Name: "A", Delta: 3},
		{Name: "B", Delta: -2},
		{Name: "C", Delta: 0},
		{Name: "D", Delta: 5},
		{Name: "E", Delta: -7},
	}

	risers, fallers := ranking.TopMovers(deltas, 1)
	if len(risers) != 1 || risers[0].Name != "D" {
		t.Fatalf("risers = %#v, want [D]", risers)
	}
	if len(fallers) != 1 || fallers[0].Name != "E" {
		t.Fatalf("fallers = %#v, want [E]", fallers)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	previous := ranking.PreviousEntries([]ranking.Row{
		{"club_name": "A", "rank_position": 1.0, "score": 70.0},
		{"club_name": "B", "rank_position": 2.0, "score": 88.0},
	})
	current := []ranking.Row{
		{"club_name": "A", "score": 92.0, "volume_total": 100.0, "sentiment_score": 0.4},
		{"club_name": "B", "score": 60.0, "volume_total": 350.0, "sentiment_score": -0.2},
	}

	s := ranking.Summarize(current, previous)
	if s.Leader == nil || s.Leader.Club != "A" || s.Leader.Value != 92.0 {
		t.Fatalf("leader = %#v", s.Leader)
	}
	if s.TopVolume == nil || s.TopVolume.Club != "B" {
		t.Fatalf("top volume = %#v", s.TopVolume)
	}
	if s.BestSentiment == nil || s.BestSentiment.Club != "A" {
		t.Fatalf("best sentiment = %#v", s.BestSentiment)
	}
	if s.WorstSentiment == nil || s.WorstSentiment.Club != "B" {
		t.Fatalf("worst sentiment = %#v", s.WorstSentiment)
	}
	if s.BiggestRise == nil || s.BiggestRise.Club != "A" || s.BiggestRise.Delta != 22.0 {
		t.Fatalf("biggest rise = %#v", s.BiggestRise)
	}
	if s.BiggestDrop == nil || s.BiggestDrop.Club != "B" || s.BiggestDrop.Delta != -28.0 {
		t.Fatalf("biggest drop = %#v", s.BiggestDrop)
	}
}

func TestSummarizeWithoutComparisonDay(t *testing.T) {
	t.Parallel()

	s := ranking.Summarize([]ranking.Row{{"club_name": "A", "score": 50.0}}, nil)
	if s.Leader == nil || s.Leader.Club != "A" {
		t.Fatalf("leader = %#v", s.Leader)
	}
	if s.BiggestRise != nil || s.BiggestDrop != nil {
		t.Fatalf("score shifts without previous day: %#v %#v", s.BiggestRise, s.BiggestDrop)
	}
}
