package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

func f64(v float64) *float64 { return &v }

func TestSnapshotGetByDate(t *testing.T) {
	t.Parallel()

	rank := 3
	svc := NewSnapshotService(
		&stubClubRepo{club: club.Club{ID: "c1", NameOfficial: "Clube de Regatas do Flamengo", NameShort: "Flamengo"}, found: true},
		&stubRankingRepo{
			day:      ranking.DayRecord{ClubID: "c1", Date: "2026-08-30", Score: f64(91.2), RankPosition: &rank},
			dayFound: true,
		},
	)

	got, err := svc.Get(context.Background(), "flamengo", "2026-08-30")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Club != "Flamengo" {
		t.Fatalf("club = %q, want short name", got.Club)
	}
	if got.Date != "2026-08-30" || got.Score == nil || *got.Score != 91.2 {
		t.Fatalf("snapshot = %#v", got)
	}
	if got.RankPosition == nil || *got.RankPosition != 3 {
		t.Fatalf("rank = %v, want 3", got.RankPosition)
	}
}

func TestSnapshotGetLatestWhenDateOmitted(t *testing.T) {
	t.Parallel()

	svc := NewSnapshotService(
		&stubClubRepo{club: club.Club{ID: "c1", NameOfficial: "Palmeiras"}, found: true},
		&stubRankingRepo{recent: []ranking.DayRecord{{ClubID: "c1", Date: "2026-08-31", Score: f64(80)}}},
	)

	got, err := svc.Get(context.Background(), "palmeiras", "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Date != "2026-08-31" {
		t.Fatalf("date = %q, want latest record date", got.Date)
	}
}

func TestSnapshotGetUnknownClub(t *testing.T) {
	t.Parallel()

	svc := NewSnapshotService(&stubClubRepo{}, &stubRankingRepo{})
	_, err := svc.Get(context.Background(), "nonexistent", "")
	if !stderrors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSnapshotGetValidation(t *testing.T) {
	t.Parallel()

	svc := NewSnapshotService(&stubClubRepo{found: true}, &stubRankingRepo{})
	if _, err := svc.Get(context.Background(), "  ", ""); !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank club err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Get(context.Background(), "flamengo", "30/08/2026"); !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad date err = %v, want ErrInvalidInput", err)
	}
}
