// Package validate checks create and partial-update payloads for presence
// before they reach storage. It does no type coercion or format checking.
package validate

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/noteful/internal/apperr"
)

// Body is a decoded JSON object. Absent keys and JSON null both read as nil.
type Body map[string]any

// Decode parses data as a JSON object. An empty payload is an empty object.
func Decode(data []byte) (Body, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Body{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var b Body
	if err := dec.Decode(&b); err != nil {
		return nil, apperr.InvalidBody("Request body must be a JSON object")
	}
	if b == nil {
		b = Body{}
	}
	return b, nil
}

// Create fails with MissingField for the first key of required, in order,
// whose value is absent or null. Empty strings count as present.
func Create(b Body, required []string) error {
	for _, key := range required {
		if err := validation.Validate(b[key], validation.NotNil); err != nil {
			return apperr.MissingField(key)
		}
	}
	return nil
}

// Update fails with EmptyUpdate(msg) unless at least one updatable key holds
// a truthy value. Keys outside updatable are ignored.
func Update(b Body, updatable []string, msg string) error {
	for _, key := range updatable {
		if truthy(b[key]) {
			return nil
		}
	}
	return apperr.EmptyUpdate(msg)
}

func truthy(v any) bool {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err == nil && f != 0
	}
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return validation.Validate(v, validation.Required) == nil
}
