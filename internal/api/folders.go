package api

import (
	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/sse"
	"github.com/starford/noteful/internal/storage"
)

func newFolderResource(acc storage.FolderAccessor, events *sse.Broker) *resource[models.Folder, models.NewFolder, models.FolderPatch, FolderResponse] {
	return &resource[models.Folder, models.NewFolder, models.FolderPatch, FolderResponse]{
		name:        "folder",
		notFound:    "Folder does not exist",
		emptyUpdate: "Request body must contain 'folder_name'",
		required:    []string{"folder_name"},
		updatable:   []string{"folder_name"},
		acc:         acc,
		id:          func(f *models.Folder) int64 { return f.ID },
		serialize:   SerializeFolder,
		events:      events,
	}
}
