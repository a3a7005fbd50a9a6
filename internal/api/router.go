package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/noteful/internal/sse"
	"github.com/starford/noteful/internal/storage"
)

// NewRouter creates a chi router with the folder and note routes, meant to be
// mounted under /api. When events is non-nil, mutations are published to it
// and its stream is served at GET /events.
func NewRouter(store storage.Provider, events *sse.Broker) chi.Router {
	r := chi.NewRouter()

	r.Mount("/folders", newFolderResource(store.Folders(), events).routes())
	r.Mount("/notes", newNoteResource(store.Notes(), events).routes())

	if events != nil {
		r.Get("/events", events.ServeHTTP)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("Not found"))
	})

	return r
}
