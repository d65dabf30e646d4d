package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

const (
	defaultSeriesDays = 90
	maxSeriesDays     = 365
)

// Series is a club's daily score history, oldest point first.
type Series struct {
	Club   string                `json:"club"`
	ClubID string                `json:"club_id"`
	Days   int                   `json:"days"`
	Points []ranking.SeriesPoint `json:"points"`
}

type SeriesService struct {
	clubRepo    club.Repository
	rankingRepo ranking.Repository
}

func NewSeriesService(clubRepo club.Repository, rankingRepo ranking.Repository) *SeriesService {
	return &SeriesService{clubRepo: clubRepo, rankingRepo: rankingRepo}
}

// Get assembles a score time series for one club. Days outside [1, 365]
// are rejected; zero means the default window. Records without a finite
// score are dropped rather than plotted as zeros.
func (s *SeriesService) Get(ctx context.Context, clubName string, days int) (Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Get")
	defer span.End()

	clubName = strings.TrimSpace(clubName)
	if clubName == "" {
		return Series{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	if days == 0 {
		days = defaultSeriesDays
	}
	if days < 1 || days > maxSeriesDays {
		return Series{}, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, maxSeriesDays)
	}

	resolved, found, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return Series{}, fmt.Errorf("resolve club %q: %w", clubName, err)
	}
	if !found {
		return Series{}, fmt.Errorf("%w: club %q not found", ErrNotFound, clubName)
	}

	records, err := s.rankingRepo.RecentDayRecords(ctx, resolved.ID, days)
	if err != nil {
		return Series{}, fmt.Errorf("fetch recent records: %w", err)
	}

	points := make([]ranking.SeriesPoint, 0, len(records))
	for _, record := range records {
		if record.Score == nil || record.Date == "" {
			continue
		}
		points = append(points, ranking.SeriesPoint{Date: record.Date, Value: *record.Score})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return Series{
		Club:   resolved.DisplayName(),
		ClubID: resolved.ID,
		Days:   days,
		Points: points,
	}, nil
}
