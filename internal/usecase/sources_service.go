package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/metrics"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

// SourceBreakdown is one club's day split by collection source.
type SourceBreakdown struct {
	Club    string                    `json:"club"`
	ClubID  string                    `json:"club_id"`
	Date    string                    `json:"date"`
	Sources []metrics.SourceAggregate `json:"sources"`
	Note    string                    `json:"note,omitempty"`
}

type SourcesService struct {
	clubRepo    club.Repository
	rankingRepo ranking.Repository
	metricsRepo metrics.Repository
	sourceRepo  metrics.SourceRepository
}

func NewSourcesService(clubRepo club.Repository, rankingRepo ranking.Repository, metricsRepo metrics.Repository, sourceRepo metrics.SourceRepository) *SourcesService {
	return &SourcesService{
		clubRepo:    clubRepo,
		rankingRepo: rankingRepo,
		metricsRepo: metricsRepo,
		sourceRepo:  sourceRepo,
	}
}

// Get aggregates a club's raw bucket metrics over one UTC day. With no date
// given, the latest aggregation day with data is used; the scoring pipeline
// lags the clock, so "today" would routinely be an empty day. A day with no
// buckets is a valid answer and carries an explanatory note instead of an
// error.
func (s *SourcesService) Get(ctx context.Context, clubName, date string) (SourceBreakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SourcesService.Get")
	defer span.End()

	clubName = strings.TrimSpace(clubName)
	if clubName == "" {
		return SourceBreakdown{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}

	date = strings.TrimSpace(date)
	if date == "" {
		latest, ok, latestErr := s.rankingRepo.LatestDate(ctx)
		if latestErr != nil {
			return SourceBreakdown{}, fmt.Errorf("resolve latest aggregation date: %w", latestErr)
		}
		if !ok {
			return SourceBreakdown{}, fmt.Errorf("%w: no date given and no aggregation days available", ErrInvalidInput)
		}
		date = latest
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return SourceBreakdown{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	resolved, found, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return SourceBreakdown{}, fmt.Errorf("resolve club %q: %w", clubName, err)
	}
	if !found {
		return SourceBreakdown{}, fmt.Errorf("%w: club %q not found", ErrNotFound, clubName)
	}

	from := day.UTC().Format(time.RFC3339)
	to := day.UTC().Add(24 * time.Hour).Format(time.RFC3339)
	buckets, err := s.metricsRepo.BucketsForDay(ctx, resolved.ID, from, to)
	if err != nil {
		return SourceBreakdown{}, fmt.Errorf("fetch bucket metrics: %w", err)
	}

	out := SourceBreakdown{
		Club:    resolved.DisplayName(),
		ClubID:  resolved.ID,
		Date:    date,
		Sources: []metrics.SourceAggregate{},
	}
	if len(buckets) == 0 {
		out.Note = "no metrics recorded for this day"
		return out, nil
	}

	sourceIDs := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	for _, bucket := range buckets {
		if bucket.SourceID == "" {
			continue
		}
		if _, ok := seen[bucket.SourceID]; ok {
			continue
		}
		seen[bucket.SourceID] = struct{}{}
		sourceIDs = append(sourceIDs, bucket.SourceID)
	}

	var sources []metrics.Source
	if len(sourceIDs) > 0 {
		sources, err = s.sourceRepo.SourcesByID(ctx, sourceIDs)
		if err != nil {
			// Source names are cosmetic; fall back to raw IDs.
			span.RecordError(err)
			sources = nil
		}
	}

	out.Sources = metrics.AggregateBySource(buckets, sources)
	return out, nil
}
