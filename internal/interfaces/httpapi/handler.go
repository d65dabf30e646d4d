package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pulsopublico/pulso-api/internal/usecase"
)

type Handler struct {
	snapshotService *usecase.SnapshotService
	seriesService   *usecase.SeriesService
	sourcesService  *usecase.SourcesService
	rankingService  *usecase.RankingService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	snapshotService *usecase.SnapshotService,
	seriesService *usecase.SeriesService,
	sourcesService *usecase.SourcesService,
	rankingService *usecase.RankingService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		snapshotService: snapshotService,
		seriesService:   seriesService,
		sourcesService:  sourcesService,
		rankingService:  rankingService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type clubDayQuery struct {
	Club string `validate:"required"`
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSnapshot")
	defer span.End()

	params := clubDayQuery{
		Club: strings.TrimSpace(r.URL.Query().Get("club")),
		Date: strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if err := h.validator.Struct(params); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: club is required and date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	snapshot, err := h.snapshotService.Get(ctx, params.Club, params.Date)
	if err != nil {
		h.logger.WarnContext(ctx, "get snapshot failed", "club", params.Club, "date", params.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, snapshot)
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeries")
	defer span.End()

	clubName := strings.TrimSpace(r.URL.Query().Get("club"))
	rawDays := r.URL.Query().Get("limit_days")
	if strings.TrimSpace(rawDays) == "" {
		rawDays = r.URL.Query().Get("days")
	}
	days, err := parseOptionalInt(rawDays)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: limit_days must be an integer", usecase.ErrInvalidInput))
		return
	}

	series, err := h.seriesService.Get(ctx, clubName, days)
	if err != nil {
		h.logger.WarnContext(ctx, "get series failed", "club", clubName, "days", days, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, series)
}

func (h *Handler) GetSourceBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSourceBreakdown")
	defer span.End()

	params := clubDayQuery{
		Club: strings.TrimSpace(r.URL.Query().Get("club")),
		Date: strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if err := h.validator.Struct(params); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: club is required and date must be YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	breakdown, err := h.sourcesService.Get(ctx, params.Club, params.Date)
	if err != nil {
		h.logger.WarnContext(ctx, "get source breakdown failed", "club", params.Club, "date", params.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, breakdown)
}

func parseOptionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
