package sanitize

import (
	"testing"

	"github.com/starford/noteful/internal/models"
)

func TestText_EscapesScript(t *testing.T) {
	got := Text(`Silly rabbit <script>alert("xss");</script>`)
	want := `Silly rabbit &lt;script&gt;alert("xss");&lt;/script&gt;`
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestText_PlainUnchanged(t *testing.T) {
	for _, s := range []string{"", "Home", `Bob's "notes" & stuff`} {
		if got := Text(s); got != s {
			t.Errorf("Text(%q) = %q", s, got)
		}
	}
}

func TestMarkup_StripsEventHandler(t *testing.T) {
	in := `Bad image <img src="https://url.to.file.which/does-not.exist" onerror="alert(document.cookie);">. But not <strong>all</strong> bad.`
	want := `Bad image <img src="https://url.to.file.which/does-not.exist">. But not <strong>all</strong> bad.`
	if got := Markup(in); got != want {
		t.Errorf("Markup = %q, want %q", got, want)
	}
}

func TestMarkup_EscapesScript(t *testing.T) {
	got := Markup(`hi <script>alert("xss");</script>`)
	want := `hi &lt;script&gt;alert("xss");&lt;/script&gt;`
	if got != want {
		t.Errorf("Markup = %q, want %q", got, want)
	}
}

func TestMarkup_DropsUnsafeURL(t *testing.T) {
	got := Markup(`<a href="javascript:alert(1)" title="x">link</a>`)
	want := `<a title="x">link</a>`
	if got != want {
		t.Errorf("Markup = %q, want %q", got, want)
	}
}

func TestMarkup_SelfClosingAndComments(t *testing.T) {
	got := Markup(`a<br/>b<!-- hidden -->c`)
	want := `a<br />bc`
	if got != want {
		t.Errorf("Markup = %q, want %q", got, want)
	}
}

func TestMarkup_PlainTextUntouched(t *testing.T) {
	s := `Bacon ipsum "dolor" & amet, it's fine.`
	if got := Markup(s); got != s {
		t.Errorf("Markup(%q) = %q", s, got)
	}
}

func TestMarkup_StrayBracket(t *testing.T) {
	if got := Markup("a < b"); got != "a &lt; b" {
		t.Errorf("Markup = %q", got)
	}
}

func TestMarkup_UnterminatedTagAtEOF(t *testing.T) {
	cases := map[string]string{
		"if x <y":                          "if x &lt;y",
		"a <b c":                           "a &lt;b c",
		"<b>ok</b><x":                      "<b>ok</b>&lt;x",
		"tail <img src=x onerror=alert(1)": "tail &lt;img src=x onerror=alert(1)",
	}
	for in, want := range cases {
		if got := Markup(in); got != want {
			t.Errorf("Markup(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRecords_DoNotMutateInput(t *testing.T) {
	n := models.Note{ID: 911, NoteTitle: "<b>t</b>", Content: `<img src="/x.png" onload="x()">`, FolderID: 1}
	got := Note(n)
	if got.NoteTitle != "&lt;b&gt;t&lt;/b&gt;" {
		t.Errorf("title = %q", got.NoteTitle)
	}
	if got.Content != `<img src="/x.png">` {
		t.Errorf("content = %q", got.Content)
	}
	if n.NoteTitle != "<b>t</b>" {
		t.Error("input note was modified")
	}
	if got.ID != 911 || got.FolderID != 1 {
		t.Errorf("non-text fields changed: %+v", got)
	}

	f := Folder(models.Folder{ID: 1, FolderName: "<i>Home</i>"})
	if f.FolderName != "&lt;i&gt;Home&lt;/i&gt;" {
		t.Errorf("folder_name = %q", f.FolderName)
	}
}
