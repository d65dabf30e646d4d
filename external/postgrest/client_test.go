package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pulsopublico/pulso-api/internal/platform/logging"
	"github.com/pulsopublico/pulso-api/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		ServiceKey: "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: retries,
		Logger:     logging.NewNop(),
	})
	return client, server
}

func TestGetRowsSendsAuthHeaders(t *testing.T) {
	t.Parallel()

	var gotAPIKey, gotAuth, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"score": 91.5}]`))
	}, 0)

	rows, err := client.GetRows(context.Background(), "daily_ranking", NewQuery().Select("*"))
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 || rows[0]["score"] != 91.5 {
		t.Fatalf("rows = %#v", rows)
	}
	if gotAPIKey != "test-key" {
		t.Fatalf("apikey header = %q", gotAPIKey)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if gotPath != "/rest/v1/daily_ranking" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestGetRowsRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}, 2)

	rows, err := client.GetRows(context.Background(), "daily_ranking", NewQuery())
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if rows != nil && len(rows) != 0 {
		t.Fatalf("rows = %#v, want empty", rows)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestGetRowsDoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"relation does not exist"}`))
	}, 3)

	_, err := client.GetRows(context.Background(), "missing_table", NewQuery())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestGetRowsUnconfiguredBackend(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	_, err := client.GetRows(context.Background(), "daily_ranking", NewQuery())
	if !usecase.IsBackendNotConfigured(err) {
		t.Fatalf("err = %v, want backend-not-configured", err)
	}
}

func TestFirstNonEmptySkipsFailingAndEmptyResources(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/daily_ranking_with_names"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"relation does not exist"}`))
		case strings.HasSuffix(r.URL.Path, "/daily_ranking"):
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`[{"club_name":"Santos"}]`))
		}
	}, 0)

	rows, resource, err := client.FirstNonEmpty(
		context.Background(),
		[]string{"daily_ranking_with_names", "daily_ranking", "daily_rankings"},
		func(string) *Query { return NewQuery().Select("*") },
	)
	if err != nil {
		t.Fatalf("FirstNonEmpty: %v", err)
	}
	if resource != "daily_rankings" {
		t.Fatalf("resource = %q, want daily_rankings", resource)
	}
	if len(rows) != 1 || rows[0]["club_name"] != "Santos" {
		t.Fatalf("rows = %#v", rows)
	}
}

func TestFirstNonEmptyAllEmptyReportsFirstEmptyResource(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, 0)

	rows, resource, err := client.FirstNonEmpty(
		context.Background(),
		[]string{"daily_ranking_with_names", "daily_ranking"},
		func(string) *Query { return NewQuery() },
	)
	if err != nil {
		t.Fatalf("FirstNonEmpty: %v", err)
	}
	if resource != "daily_ranking_with_names" {
		t.Fatalf("resource = %q, want daily_ranking_with_names", resource)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %#v, want empty", rows)
	}
}

func TestFirstNonEmptyAllFailingReturnsError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, 0)

	_, _, err := client.FirstNonEmpty(
		context.Background(),
		[]string{"a", "b"},
		func(string) *Query { return NewQuery() },
	)
	if err == nil {
		t.Fatal("expected error when every candidate fails")
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("dial failed apikey=secret-key token", "secret-key")
	if strings.Contains(got, "secret-key") {
		t.Fatalf("key leaked: %q", got)
	}
}
