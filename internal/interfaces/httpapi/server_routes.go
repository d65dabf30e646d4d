package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/club_snapshot", handler.GetSnapshot)
	mux.HandleFunc("GET /api/club_series", handler.GetSeries)
	mux.HandleFunc("GET /api/club_sources_day", handler.GetSourceBreakdown)
	mux.HandleFunc("GET /api/daily_ranking", handler.GetDailyRanking)
	mux.HandleFunc("GET /api/top_movers", handler.GetTopMovers)
	mux.HandleFunc("GET /api/insights", handler.GetInsights)
}
