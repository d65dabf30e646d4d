package usecase

import (
	"context"

	"github.com/pulsopublico/pulso-api/internal/domain/club"
	"github.com/pulsopublico/pulso-api/internal/domain/metrics"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
)

type stubClubRepo struct {
	club  club.Club
	found bool
	err   error
}

func (s *stubClubRepo) FindByName(ctx context.Context, name string) (club.Club, bool, error) {
	return s.club, s.found, s.err
}

type stubRankingRepo struct {
	day        ranking.DayRecord
	dayFound   bool
	recent     []ranking.DayRecord
	latestDate string
	latestOK   bool
	rowsByDate map[string][]ranking.Row
	rows       []ranking.Row
	resource   string
	err        error
}

func (s *stubRankingRepo) DayRecord(ctx context.Context, clubID, date string) (ranking.DayRecord, bool, error) {
	return s.day, s.dayFound, s.err
}

func (s *stubRankingRepo) RecentDayRecords(ctx context.Context, clubID string, limit int) ([]ranking.DayRecord, error) {
	return s.recent, s.err
}

func (s *stubRankingRepo) LatestDate(ctx context.Context) (string, bool, error) {
	return s.latestDate, s.latestOK, s.err
}

func (s *stubRankingRepo) RowsForDate(ctx context.Context, date string, q ranking.RowQuery) ([]ranking.Row, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	if s.rowsByDate != nil {
		return s.rowsByDate[date], s.resource, nil
	}
	return nil, s.resource, nil
}

func (s *stubRankingRepo) Rows(ctx context.Context, q ranking.RowQuery) ([]ranking.Row, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.rows, s.resource, nil
}

type stubMetricsRepo struct {
	buckets  []metrics.BucketMetric
	gotFrom  string
	gotTo    string
	err      error
}

func (s *stubMetricsRepo) BucketsForDay(ctx context.Context, clubID, from, to string) ([]metrics.BucketMetric, error) {
	s.gotFrom, s.gotTo = from, to
	return s.buckets, s.err
}

type stubSourceRepo struct {
	sources []metrics.Source
	err     error
}

func (s *stubSourceRepo) SourcesByID(ctx context.Context, ids []string) ([]metrics.Source, error) {
	return s.sources, s.err
}
