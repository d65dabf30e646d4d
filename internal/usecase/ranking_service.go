package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

const (
	defaultRankingLimit = 20
	maxRankingLimit     = 100
	moversWindow        = 5
)

var orderExprRegex = regexp.MustCompile(`^[a-z0-9_]+\.(asc|desc)$`)

// RankingParams are the caller-tunable knobs for a daily ranking read.
// Empty fields take the service defaults.
type RankingParams struct {
	Date   string
	Select string
	Order  string
	Limit  int
}

// RankingPage is one day's ranking table plus the provenance needed to
// debug schema drift: which date actually resolved and which backing
// resource answered.
type RankingPage struct {
	ResolvedDate string        `json:"resolved_date"`
	Resource     string        `json:"source"`
	Count        int           `json:"count"`
	Data         []ranking.Row `json:"data"`
}

// MoversResult lists the clubs that climbed or dropped the most between the
// two latest ranking days.
type MoversResult struct {
	Date       string          `json:"date"`
	ComparedTo string          `json:"compared_to,omitempty"`
	Risers     []ranking.Delta `json:"risers"`
	Fallers    []ranking.Delta `json:"fallers"`
	Note       string          `json:"note,omitempty"`
}

// InsightsResult is the day's headline highlights.
type InsightsResult struct {
	Date       string          `json:"date"`
	ComparedTo string          `json:"compared_to,omitempty"`
	Summary    ranking.Summary `json:"summary"`
	Note       string          `json:"note,omitempty"`
}

type RankingService struct {
	rankingRepo ranking.Repository
}

func NewRankingService(rankingRepo ranking.Repository) *RankingService {
	return &RankingService{rankingRepo: rankingRepo}
}

// Daily reads the ranking table for one day. With no date given, the latest
// known ranking day is used, falling back to an unfiltered read when that day
// resolves empty. An explicitly requested day is answered as-is, empty or not.
func (s *RankingService) Daily(ctx context.Context, params RankingParams) (RankingPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Daily")
	defer span.End()

	query, err := normalizeRowQuery(params)
	if err != nil {
		return RankingPage{}, err
	}

	requested := strings.TrimSpace(params.Date)
	date := requested
	if requested != "" {
		if _, parseErr := time.Parse("2006-01-02", requested); parseErr != nil {
			return RankingPage{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	} else {
		latest, ok, latestErr := s.rankingRepo.LatestDate(ctx)
		if latestErr != nil {
			return RankingPage{}, fmt.Errorf("resolve latest ranking date: %w", latestErr)
		}
		if ok {
			date = latest
		}
	}

	var rows []ranking.Row
	var resource string
	if date != "" {
		rows, resource, err = s.rankingRepo.RowsForDate(ctx, date, query)
		if err != nil {
			return RankingPage{}, fmt.Errorf("fetch ranking for %s: %w", date, err)
		}
	}
	if len(rows) == 0 && requested == "" {
		// No resolvable day or the just-resolved latest day came back empty
		// under a concurrent pipeline write; let the backend report its own
		// most recent rows. An explicitly requested day never falls back:
		// an empty day is that day's honest answer.
		rows, resource, err = s.rankingRepo.Rows(ctx, query)
		if err != nil {
			return RankingPage{}, fmt.Errorf("fetch ranking: %w", err)
		}
	}

	rows = ranking.Canonicalize(rows)
	if rows == nil {
		rows = []ranking.Row{}
	}
	if requested == "" && len(rows) > 0 {
		if rowDate := rows[0].Date(); rowDate != "" {
			date = rowDate
		}
	}

	return RankingPage{
		ResolvedDate: date,
		Resource:     resource,
		Count:        len(rows),
		Data:         rows,
	}, nil
}

// Movers compares the effective ranking day with the day before it and
// returns the biggest climbs and drops. An empty date selects the latest
// ranking day; limit caps each list and defaults to 5.
func (s *RankingService) Movers(ctx context.Context, date string, limit int) (MoversResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Movers")
	defer span.End()

	if limit == 0 {
		limit = moversWindow
	}
	if limit < 1 || limit > defaultRankingLimit {
		return MoversResult{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, defaultRankingLimit)
	}

	current, previous, date, prevDate, err := s.loadComparisonDays(ctx, date)
	if err != nil {
		return MoversResult{}, err
	}

	out := MoversResult{
		Date:    date,
		Risers:  []ranking.Delta{},
		Fallers: []ranking.Delta{},
	}
	if len(previous) == 0 {
		out.Note = "no prior day to compare against"
		return out, nil
	}

	out.ComparedTo = prevDate
	deltas := ranking.RankDeltas(current, ranking.PreviousEntries(previous))
	risers, fallers := ranking.TopMovers(deltas, limit)
	if risers != nil {
		out.Risers = risers
	}
	if fallers != nil {
		out.Fallers = fallers
	}
	return out, nil
}

// Insights summarizes one ranking day: the leader, the volume and sentiment
// extremes, and the biggest score shifts against the prior day. An empty date
// selects the latest ranking day; limit caps how many rows feed the summary.
func (s *RankingService) Insights(ctx context.Context, date string, limit int) (InsightsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Insights")
	defer span.End()

	if limit != 0 && (limit < 1 || limit > maxRankingLimit) {
		return InsightsResult{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxRankingLimit)
	}

	current, previous, date, prevDate, err := s.loadComparisonDays(ctx, date)
	if err != nil {
		return InsightsResult{}, err
	}
	if limit > 0 && len(current) > limit {
		current = current[:limit]
	}

	out := InsightsResult{Date: date}
	if len(previous) > 0 {
		out.ComparedTo = prevDate
	} else {
		out.Note = "score shifts unavailable without a prior day"
	}
	out.Summary = ranking.Summarize(current, ranking.PreviousEntries(previous))
	return out, nil
}

func (s *RankingService) loadComparisonDays(ctx context.Context, requested string) (current, previous []ranking.Row, date, prevDate string, err error) {
	latest := strings.TrimSpace(requested)
	if latest != "" {
		if _, parseErr := time.Parse("2006-01-02", latest); parseErr != nil {
			return nil, nil, "", "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	} else {
		resolved, ok, latestErr := s.rankingRepo.LatestDate(ctx)
		if latestErr != nil {
			return nil, nil, "", "", fmt.Errorf("resolve latest ranking date: %w", latestErr)
		}
		if !ok {
			return nil, nil, "", "", fmt.Errorf("%w: no ranking data available", ErrNotFound)
		}
		latest = resolved
	}

	query := ranking.RowQuery{Select: "*", Order: "score.desc", Limit: maxRankingLimit}
	current, _, err = s.rankingRepo.RowsForDate(ctx, latest, query)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("fetch ranking for %s: %w", latest, err)
	}
	if len(current) == 0 {
		return nil, nil, "", "", fmt.Errorf("%w: no ranking rows for %s", ErrNotFound, latest)
	}
	current = ranking.Canonicalize(current)

	day, parseErr := time.Parse("2006-01-02", latest)
	if parseErr != nil {
		return current, nil, latest, "", nil
	}
	prevDate = day.AddDate(0, 0, -1).Format("2006-01-02")

	previous, _, err = s.rankingRepo.RowsForDate(ctx, prevDate, query)
	if err != nil {
		// The comparison day is best effort; the latest day still answers.
		previous = nil
	}
	previous = ranking.Canonicalize(previous)
	if len(previous) == 0 {
		prevDate = ""
	}
	return current, previous, latest, prevDate, nil
}

func normalizeRowQuery(params RankingParams) (ranking.RowQuery, error) {
	query := ranking.RowQuery{
		Select: strings.TrimSpace(params.Select),
		Order:  strings.ToLower(strings.TrimSpace(params.Order)),
		Limit:  params.Limit,
	}
	if query.Select == "" {
		query.Select = "*"
	}
	if query.Order == "" {
		query.Order = "score.desc"
	}
	if !orderExprRegex.MatchString(query.Order) {
		return ranking.RowQuery{}, fmt.Errorf("%w: order must look like column.asc or column.desc", ErrInvalidInput)
	}
	if query.Limit == 0 {
		query.Limit = defaultRankingLimit
	}
	if query.Limit < 1 || query.Limit > maxRankingLimit {
		return ranking.RowQuery{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxRankingLimit)
	}
	return query, nil
}
