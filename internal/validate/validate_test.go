package validate

import (
	"errors"
	"testing"

	"github.com/starford/noteful/internal/apperr"
)

var noteRequired = []string{"note_title", "content", "folder_id"}

func mustDecode(t *testing.T, s string) Body {
	t.Helper()
	b, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return b
}

func TestCreate_FirstMissingInOrder(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{}`, "note_title"},
		{`{"content":"x"}`, "note_title"},
		{`{"note_title":"t"}`, "content"},
		{`{"note_title":"t","content":null,"folder_id":1}`, "content"},
		{`{"note_title":"t","content":"c"}`, "folder_id"},
	}
	for _, c := range cases {
		err := Create(mustDecode(t, c.body), noteRequired)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: err = %v, want ValidationError", c.body, err)
		}
		if ve.Field != c.want {
			t.Errorf("%s: field = %q, want %q", c.body, ve.Field, c.want)
		}
		if ve.Message != "Missing '"+c.want+"' in request body" {
			t.Errorf("%s: message = %q", c.body, ve.Message)
		}
	}
}

func TestCreate_EmptyStringIsPresent(t *testing.T) {
	b := mustDecode(t, `{"note_title":"","content":"","folder_id":0}`)
	if err := Create(b, noteRequired); err != nil {
		t.Errorf("empty values should satisfy presence: %v", err)
	}
}

func TestUpdate_NeedsOneTruthyField(t *testing.T) {
	updatable := []string{"note_title", "content"}
	msg := "Request body must contain either 'note_title' or 'content'"

	for _, s := range []string{`{}`, `{"irrelevantField":"foo-fighters"}`, `{"note_title":"","content":null}`, `{"folder_id":1}`} {
		err := Update(mustDecode(t, s), updatable, msg)
		if err == nil || err.Error() != msg {
			t.Errorf("%s: err = %v, want %q", s, err, msg)
		}
	}
	for _, s := range []string{`{"note_title":"x"}`, `{"content":"y","extra":1}`} {
		if err := Update(mustDecode(t, s), updatable, msg); err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
		}
	}
}

func TestTruthy(t *testing.T) {
	b := mustDecode(t, `{"zero":0,"one":1,"f":false,"t":true,"obj":{},"arr":[]}`)
	want := map[string]bool{"zero": false, "one": true, "f": false, "t": true, "obj": true, "arr": true, "missing": false}
	for k, w := range want {
		if got := truthy(b[k]); got != w {
			t.Errorf("truthy(%s) = %v, want %v", k, got, w)
		}
	}
}

func TestDecode(t *testing.T) {
	if b, err := Decode(nil); err != nil || len(b) != 0 {
		t.Errorf("empty payload = %v, %v", b, err)
	}
	if b, err := Decode([]byte("null")); err != nil || b == nil {
		t.Errorf("null payload = %v, %v", b, err)
	}
	for _, s := range []string{"{", "[1]", `"str"`} {
		if _, err := Decode([]byte(s)); err == nil {
			t.Errorf("Decode(%q) should fail", s)
		}
	}
}
