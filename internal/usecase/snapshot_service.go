package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

// Snapshot is one club's popularity reading for a single day.
type Snapshot struct {
	Club           string   `json:"club"`
	ClubID         string   `json:"club_id"`
	Date           string   `json:"date"`
	Score          *float64 `json:"score"`
	RankPosition   *int     `json:"rank_position"`
	VolumeTotal    *float64 `json:"volume_total"`
	SentimentScore *float64 `json:"sentiment_score"`
}

type SnapshotService struct {
	clubRepo    club.Repository
	rankingRepo ranking.Repository
}

func NewSnapshotService(clubRepo club.Repository, rankingRepo ranking.Repository) *SnapshotService {
	return &SnapshotService{clubRepo: clubRepo, rankingRepo: rankingRepo}
}

// Get resolves the club by name and returns its reading for the requested
// day, or the most recent reading when no date is given.
func (s *SnapshotService) Get(ctx context.Context, clubName, date string) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Get")
	defer span.End()

	clubName = strings.TrimSpace(clubName)
	if clubName == "" {
		return Snapshot{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return Snapshot{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	resolved, found, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return Snapshot{}, fmt.Errorf("resolve club %q: %w", clubName, err)
	}
	if !found {
		return Snapshot{}, fmt.Errorf("%w: club %q not found", ErrNotFound, clubName)
	}

	var record ranking.DayRecord
	var ok bool
	if date != "" {
		record, ok, err = s.rankingRepo.DayRecord(ctx, resolved.ID, date)
		if err != nil {
			return Snapshot{}, fmt.Errorf("fetch day record: %w", err)
		}
	} else {
		records, recentErr := s.rankingRepo.RecentDayRecords(ctx, resolved.ID, 1)
		if recentErr != nil {
			return Snapshot{}, fmt.Errorf("fetch latest record: %w", recentErr)
		}
		if len(records) > 0 {
			record, ok = records[0], true
		}
	}
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: no reading for club %q", ErrNotFound, resolved.DisplayName())
	}

	return Snapshot{
		Club:           resolved.DisplayName(),
		ClubID:         resolved.ID,
		Date:           record.Date,
		Score:          record.Score,
		RankPosition:   record.RankPosition,
		VolumeTotal:    record.VolumeTotal,
		SentimentScore: record.SentimentScore,
	}, nil
}
