package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

func TestSeriesGetAscendingAndFiniteOnly(t *testing.T) {
	t.Parallel()

	svc := NewSeriesService(
		&stubClubRepo{club: club.Club{ID: "c1", NameShort: "Santos"}, found: true},
		&stubRankingRepo{recent: []ranking.DayRecord{
			{Date: "2026-08-31", Score: f64(70)},
			{Date: "2026-08-30", Score: nil},
			{Date: "2026-08-29", Score: f64(68)},
		}},
	)

	got, err := svc.Get(context.Background(), "santos", 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Days != defaultSeriesDays {
		t.Fatalf("days = %d, want default %d", got.Days, defaultSeriesDays)
	}
	if len(got.Points) != 2 {
		t.Fatalf("points = %#v, want 2 (nil score dropped)", got.Points)
	}
	if got.Points[0].Date != "2026-08-29" || got.Points[1].Date != "2026-08-31" {
		t.Fatalf("points out of order: %#v", got.Points)
	}
}

func TestSeriesGetDaysBounds(t *testing.T) {
	t.Parallel()

	svc := NewSeriesService(&stubClubRepo{found: true}, &stubRankingRepo{})
	if _, err := svc.Get(context.Background(), "santos", maxSeriesDays+1); !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Get(context.Background(), "santos", -3); !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSeriesGetEmptyHistory(t *testing.T) {
	t.Parallel()

	svc := NewSeriesService(
		&stubClubRepo{club: club.Club{ID: "c1", NameOfficial: "Santos FC"}, found: true},
		&stubRankingRepo{},
	)
	got, err := svc.Get(context.Background(), "santos", 30)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Points) != 0 {
		t.Fatalf("points = %#v, want empty", got.Points)
	}
}
