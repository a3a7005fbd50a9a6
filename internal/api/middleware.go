// Package api implements the Noteful REST API using chi.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/noteful/internal/apperr"
)

// recordKey is the context key under which the guard stores a record of type R.
type recordKey[R any] struct{}

// RequireExisting looks up the record named by the {id} URL parameter with get
// and stores it in the request context for the next handler. When there is no
// such record the request ends with 404 and notFound as the message.
// Ids that are not positive integers never match a record.
func RequireExisting[R any](get func(ctx context.Context, id int64) (*R, error), notFound string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil || id <= 0 {
				writeError(w, r, &apperr.NotFoundError{Message: notFound})
				return
			}
			rec, err := get(r.Context(), id)
			if errors.Is(err, apperr.ErrNotFound) {
				writeError(w, r, &apperr.NotFoundError{Message: notFound})
				return
			}
			if err != nil {
				writeError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), recordKey[R]{}, rec)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Existing returns the record stored by RequireExisting, or nil.
func Existing[R any](ctx context.Context) *R {
	rec, _ := ctx.Value(recordKey[R]{}).(*R)
	return rec
}
