package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/pulsopublico/pulso-api/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const headerSourceResource = "X-Source-Resource"

type apiError struct {
	Error   string `json:"error"`
	Hint    string `json:"hint,omitempty"`
	Details string `json:"details,omitempty"`
	Club    string `json:"club,omitempty"`
	ClubID  string `json:"club_id,omitempty"`
	Date    string `json:"date,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Hint       string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"response encoding failed"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, apiError{
		Error: err.Error(),
		Hint:  mapped.Hint,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, apiError{Error: "internal server error"})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Hint:       "check the club query parameter spelling; partial names match case-insensitively",
		}
	case errors.Is(err, usecase.ErrBackendNotConfigured):
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Hint:       "set SUPABASE_URL and SUPABASE_SERVICE_KEY in the environment",
		}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError}
	}
}
