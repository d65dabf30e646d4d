package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pulsopublico/pulso-api/internal/usecase"
)

func (h *Handler) GetDailyRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDailyRanking")
	defer span.End()

	query := r.URL.Query()
	limit, err := parseOptionalInt(query.Get("limit"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
		return
	}

	params := usecase.RankingParams{
		Date:   strings.TrimSpace(query.Get("date")),
		Select: strings.TrimSpace(query.Get("select")),
		Order:  strings.TrimSpace(query.Get("order")),
		Limit:  limit,
	}

	page, err := h.rankingService.Daily(ctx, params)
	if err != nil {
		h.logger.WarnContext(ctx, "get daily ranking failed", "date", params.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	if page.Resource != "" {
		w.Header().Set(headerSourceResource, page.Resource)
	}
	writeJSON(ctx, w, http.StatusOK, page)
}

func (h *Handler) GetTopMovers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopMovers")
	defer span.End()

	date, limit, err := comparisonQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	movers, err := h.rankingService.Movers(ctx, date, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get top movers failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, movers)
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInsights")
	defer span.End()

	date, limit, err := comparisonQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	insights, err := h.rankingService.Insights(ctx, date, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get insights failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, insights)
}

func comparisonQuery(r *http.Request) (date string, limit int, err error) {
	query := r.URL.Query()
	limit, err = parseOptionalInt(query.Get("limit"))
	if err != nil {
		return "", 0, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
	}
	return strings.TrimSpace(query.Get("date")), limit, nil
}
