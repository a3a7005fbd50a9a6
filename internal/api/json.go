package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starford/noteful/internal/apperr"
)

const serverErrorMessage = "server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errMessage struct {
	Message string `json:"message"`
}

type errResponse struct {
	Error errMessage `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: errMessage{Message: msg}}
}

// writeError is the single place errors become responses. Validation and
// not-found errors are the caller's fault; everything else is a 500 with a
// message that does not leak the cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		slog.Debug("request rejected",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("reason", ve.Message))
		writeJSON(w, http.StatusBadRequest, errorBody(ve.Message))
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, errorBody(nf.Message))
	default:
		slog.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(serverErrorMessage))
	}
}

// handlerFunc is an HTTP handler that reports failure by returning an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}
