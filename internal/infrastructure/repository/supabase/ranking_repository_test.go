package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pulsopublico/pulso-api/external/postgrest"
	"github.com/pulsopublico/pulso-api/internal/domain/ranking"
	"github.com/pulsopublico/pulso-api/internal/platform/logging"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc, resources []string) *RankingRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := postgrest.NewClient(postgrest.ClientConfig{
		BaseURL:    server.URL,
		ServiceKey: "test-key",
		Timeout:    2 * time.Second,
		Logger:     logging.NewNop(),
	})
	return NewRankingRepository(client, resources)
}

func TestRowsForDateFallsBackWhenNoDayColumnExists(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "2026-08-30") {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"42703","message":"column \"aggregation_date\" does not exist"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"club_name":"Flamengo","score":91}]`))
	}, []string{"daily_ranking_with_names"})

	rows, resource, err := repo.RowsForDate(context.Background(), "2026-08-30", ranking.RowQuery{})
	if err != nil {
		t.Fatalf("RowsForDate: %v", err)
	}
	if resource != "daily_ranking_with_names" {
		t.Fatalf("resource = %q", resource)
	}
	if len(rows) != 1 || rows[0].DisplayName() != "Flamengo" {
		t.Fatalf("rows = %#v", rows)
	}
}

func TestRowsForDateSurfacesErrorWhenEverythingFails(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"permission denied"}`))
	}, []string{"daily_ranking"})

	if _, _, err := repo.RowsForDate(context.Background(), "2026-08-30", ranking.RowQuery{}); err == nil {
		t.Fatal("expected error when the unfiltered fallback fails too")
	}
}

func TestRowsForDateUsesFilteredReadWhenColumnMatches(t *testing.T) {
	t.Parallel()

	var sawDateFilter bool
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "aggregation_date=eq.2026-08-30") {
			sawDateFilter = true
			_, _ = w.Write([]byte(`[{"club_name":"Palmeiras","score":88,"aggregation_date":"2026-08-30"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}, []string{"daily_ranking_with_names"})

	rows, _, err := repo.RowsForDate(context.Background(), "2026-08-30", ranking.RowQuery{})
	if err != nil {
		t.Fatalf("RowsForDate: %v", err)
	}
	if !sawDateFilter {
		t.Fatal("expected the first date column to be tried as a filter")
	}
	if len(rows) != 1 || rows[0].Date() != "2026-08-30" {
		t.Fatalf("rows = %#v", rows)
	}
}
