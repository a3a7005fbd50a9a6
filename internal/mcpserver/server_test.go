package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/noteful/internal/api"
	"github.com/starford/noteful/internal/storage/sqlite"
	"github.com/starford/noteful/internal/testutil"
)

func testServer(t *testing.T) (*Server, *sqlite.DB) {
	t.Helper()
	db := testutil.TestDB(t)
	return New(db), db
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so the handlers are
	// invoked directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_folders":
		result, err = srv.listFolders(ctx, req)
	case "create_folder":
		result, err = srv.createFolder(ctx, req)
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "delete_note":
		result, err = srv.deleteNote(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateAndReadNote(t *testing.T) {
	srv, db := testServer(t)
	testutil.Seed(t, db)

	r := callTool(t, srv, "create_note", map[string]interface{}{
		"note_title": "Test",
		"content":    "Hello <strong>there</strong>",
		"folder_id":  2,
	})
	if r.IsError {
		t.Fatalf("create failed: %s", resultText(r))
	}
	var created api.NoteResponse
	if err := json.Unmarshal([]byte(resultText(r)), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID != 5 || created.FolderID != 2 || created.DateModified.IsZero() {
		t.Errorf("created = %+v", created)
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{"id": float64(created.ID)})
	var got api.NoteResponse
	_ = json.Unmarshal([]byte(resultText(r)), &got)
	if got.NoteTitle != "Test" || got.Content != "Hello <strong>there</strong>" {
		t.Errorf("read = %+v", got)
	}
}

func TestCreateNote_MissingField(t *testing.T) {
	srv, db := testServer(t)
	testutil.Seed(t, db)

	r := callTool(t, srv, "create_note", map[string]interface{}{"note_title": "t", "folder_id": 1})
	if !r.IsError {
		t.Fatal("expected error for missing content")
	}
	if text := resultText(r); text != "Missing 'content' in request body" {
		t.Errorf("error = %q", text)
	}
}

func TestCreateNote_UnknownFolder(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "create_note", map[string]interface{}{"note_title": "t", "content": "c", "folder_id": 9})
	if !r.IsError || resultText(r) != "Folder does not exist" {
		t.Errorf("result = %q, IsError = %v", resultText(r), r.IsError)
	}
}

func TestListFolders_Sanitized(t *testing.T) {
	srv, _ := testServer(t)
	_ = callTool(t, srv, "create_folder", map[string]interface{}{"folder_name": `<script>alert("x")</script>`})

	text := resultText(callTool(t, srv, "list_folders", map[string]interface{}{}))
	var folders []api.FolderResponse
	if err := json.Unmarshal([]byte(text), &folders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(folders) != 1 || folders[0].FolderName != `&lt;script&gt;alert("x")&lt;/script&gt;` {
		t.Errorf("folders = %+v", folders)
	}
}

func TestListNotes(t *testing.T) {
	srv, db := testServer(t)
	testutil.Seed(t, db)
	_ = callTool(t, srv, "create_note", map[string]interface{}{"note_title": "Groceries", "content": "milk", "folder_id": 3})

	var all []api.NoteResponse
	_ = json.Unmarshal([]byte(resultText(callTool(t, srv, "list_notes", map[string]interface{}{}))), &all)
	if len(all) != len(testutil.Notes())+1 {
		t.Fatalf("all = %d notes", len(all))
	}
	if last := all[len(all)-1]; last.NoteTitle != "Groceries" || last.FolderID != 3 {
		t.Errorf("last = %+v", last)
	}
}

func TestDeleteNote(t *testing.T) {
	srv, db := testServer(t)
	testutil.Seed(t, db)

	r := callTool(t, srv, "delete_note", map[string]interface{}{"id": 1})
	if r.IsError || !strings.HasPrefix(resultText(r), "deleted") {
		t.Fatalf("delete = %q", resultText(r))
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{"id": 1})
	if !r.IsError || resultText(r) != "Note does not exist" {
		t.Errorf("read after delete = %q", resultText(r))
	}
	r = callTool(t, srv, "delete_note", map[string]interface{}{"id": 1})
	if !r.IsError {
		t.Error("second delete should fail")
	}
}

func TestRecordFormatResource(t *testing.T) {
	srv, _ := testServer(t)
	contents, err := srv.readRecordFormatResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatal(err)
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok || tc.URI != recordFormatURI || !strings.Contains(tc.Text, "folder_id") {
		t.Errorf("resource = %+v", contents[0])
	}
}
