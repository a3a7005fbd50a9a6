// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Noteful folders and notes as tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/noteful/internal/api"
	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/storage"
	"github.com/starford/noteful/internal/validate"
)

const (
	folderNotFound = "Folder does not exist"
	noteNotFound   = "Note does not exist"
)

// Server wraps the MCP server with Noteful tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
}

// New creates a new MCP server with all Noteful tools registered.
func New(store storage.Provider) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"Noteful",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_folders",
		mcp.WithDescription("List all folders."),
	), s.listFolders)

	s.mcp.AddTool(mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder."),
		mcp.WithString("folder_name", mcp.Required(), mcp.Description("Display name of the folder")),
	), s.createFolder)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a single note by id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a note in an existing folder. "+
			"Read the noteful://record-format resource for the field rules."),
		mcp.WithString("note_title", mcp.Required(), mcp.Description("Note title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note body; a small set of inline HTML tags is kept")),
		mcp.WithNumber("folder_id", mcp.Required(), mcp.Description("Id of the folder the note belongs to")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note by id."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id")),
	), s.deleteNote)

	s.mcp.AddResource(
		mcp.NewResource(recordFormatURI, "Record Format",
			mcp.WithResourceDescription("Fields, validation rules and output escaping of folders and notes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRecordFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listFolders(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folders, err := s.store.Folders().List(ctx)
	if err != nil {
		return toolError(err, folderNotFound), nil
	}
	out := make([]api.FolderResponse, 0, len(folders))
	for i := range folders {
		out = append(out, api.SerializeFolder(&folders[i]))
	}
	return jsonResult(out), nil
}

func (s *Server) createFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in models.NewFolder
	if err := decodeArgs(req, []string{"folder_name"}, &in); err != nil {
		return toolError(err, folderNotFound), nil
	}
	f, err := s.store.Folders().Insert(ctx, in)
	if err != nil {
		return toolError(err, folderNotFound), nil
	}
	return jsonResult(api.SerializeFolder(f)), nil
}

func (s *Server) listNotes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.store.Notes().List(ctx)
	if err != nil {
		return toolError(err, noteNotFound), nil
	}
	out := make([]api.NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, api.SerializeNote(&notes[i]))
	}
	return jsonResult(out), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := s.store.Notes().Get(ctx, int64(id))
	if err != nil {
		return toolError(err, noteNotFound), nil
	}
	return jsonResult(api.SerializeNote(n)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in models.NewNote
	if err := decodeArgs(req, []string{"note_title", "content", "folder_id"}, &in); err != nil {
		return toolError(err, noteNotFound), nil
	}
	if _, err := s.store.Folders().Get(ctx, in.FolderID); err != nil {
		return toolError(err, folderNotFound), nil
	}
	n, err := s.store.Notes().Insert(ctx, in)
	if err != nil {
		return toolError(err, noteNotFound), nil
	}
	return jsonResult(api.SerializeNote(n)), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.store.Notes().Delete(ctx, int64(id)); err != nil {
		return toolError(err, noteNotFound), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %d", id)), nil
}

func (s *Server) readRecordFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      recordFormatURI,
			MIMEType: "text/markdown",
			Text:     RecordFormat,
		},
	}, nil
}

// decodeArgs runs tool arguments through the same presence check and typed
// decode as an HTTP create body.
func decodeArgs(req mcp.CallToolRequest, required []string, dst any) error {
	data, err := json.Marshal(req.GetArguments())
	if err != nil {
		return err
	}
	fields, err := validate.Decode(data)
	if err != nil {
		return err
	}
	if err := validate.Create(fields, required); err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return apperr.InvalidBody("Arguments contain a field of the wrong type")
	}
	return nil
}

// toolError turns err into a tool-level error. Storage faults are reported
// without their cause, like the HTTP API does.
func toolError(err error, notFound string) *mcp.CallToolResult {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return mcp.NewToolResultError(ve.Message)
	case errors.Is(err, apperr.ErrNotFound):
		return mcp.NewToolResultError(notFound)
	default:
		return mcp.NewToolResultError("server error")
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("server error")
	}
	return mcp.NewToolResultText(string(out))
}
