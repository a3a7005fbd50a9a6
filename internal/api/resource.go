package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/sse"
	"github.com/starford/noteful/internal/storage"
	"github.com/starford/noteful/internal/validate"
)

const maxBodyBytes = 1 << 20

// resource serves the collection and single-item endpoints of one record type.
// R is the stored record, N the create payload, P the partial update and S
// the serialized response.
type resource[R, N, P, S any] struct {
	name        string // singular name used in change events
	notFound    string
	emptyUpdate string
	required    []string // create-time fields, in reporting order
	updatable   []string // at least one must be truthy on patch

	acc       storage.Accessor[R, N, P]
	id        func(*R) int64
	serialize func(*R) S
	events    *sse.Broker
}

func (rs *resource[R, N, P, S]) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", handle(rs.list))
	r.Post("/", handle(rs.create))
	r.Route("/{id}", func(r chi.Router) {
		r.Use(RequireExisting(rs.acc.Get, rs.notFound))
		r.Get("/", handle(rs.get))
		r.Patch("/", handle(rs.patch))
		r.Delete("/", handle(rs.delete))
	})
	return r
}

func (rs *resource[R, N, P, S]) list(w http.ResponseWriter, r *http.Request) error {
	records, err := rs.acc.List(r.Context())
	if err != nil {
		return err
	}
	out := make([]S, 0, len(records))
	for i := range records {
		out = append(out, rs.serialize(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (rs *resource[R, N, P, S]) create(w http.ResponseWriter, r *http.Request) error {
	data, fields, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := validate.Create(fields, rs.required); err != nil {
		return err
	}
	var in N
	if err := json.Unmarshal(data, &in); err != nil {
		return apperr.InvalidBody("Request body contains a field of the wrong type")
	}

	rec, err := rs.acc.Insert(r.Context(), in)
	if err != nil {
		return err
	}
	id := rs.id(rec)
	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(id, 10)))
	writeJSON(w, http.StatusCreated, rs.serialize(rec))
	rs.publish(sse.KindCreated, id)
	return nil
}

func (rs *resource[R, N, P, S]) get(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, rs.serialize(Existing[R](r.Context())))
	return nil
}

func (rs *resource[R, N, P, S]) patch(w http.ResponseWriter, r *http.Request) error {
	data, fields, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := validate.Update(fields, rs.updatable, rs.emptyUpdate); err != nil {
		return err
	}
	var p P
	if err := json.Unmarshal(data, &p); err != nil {
		return apperr.InvalidBody("Request body contains a field of the wrong type")
	}

	id := rs.id(Existing[R](r.Context()))
	if err := rs.acc.Update(r.Context(), id, p); err != nil {
		return rs.gone(err)
	}
	w.WriteHeader(http.StatusNoContent)
	rs.publish(sse.KindUpdated, id)
	return nil
}

func (rs *resource[R, N, P, S]) delete(w http.ResponseWriter, r *http.Request) error {
	id := rs.id(Existing[R](r.Context()))
	if err := rs.acc.Delete(r.Context(), id); err != nil {
		return rs.gone(err)
	}
	w.WriteHeader(http.StatusNoContent)
	rs.publish(sse.KindDeleted, id)
	return nil
}

// gone maps a record that vanished after the existence check to this
// resource's 404.
func (rs *resource[R, N, P, S]) gone(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return &apperr.NotFoundError{Message: rs.notFound}
	}
	return err
}

func (rs *resource[R, N, P, S]) publish(kind string, id int64) {
	if rs.events != nil {
		rs.events.PublishChange(rs.name, kind, id)
	}
}

// readBody reads a bounded request body and decodes it as a JSON object.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, validate.Body, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, apperr.InvalidBody("Request body too large")
		}
		return nil, nil, apperr.InvalidBody("Failed to read request body")
	}
	fields, err := validate.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return data, fields, nil
}
