package models

// Folder groups notes.
type Folder struct {
	ID         int64
	FolderName string
}

// NewFolder carries the fields accepted when creating a folder.
type NewFolder struct {
	FolderName string `json:"folder_name"`
}

// FolderPatch is a partial update. Nil fields are left untouched.
type FolderPatch struct {
	FolderName *string `json:"folder_name"`
}

// Empty reports whether the patch changes nothing.
func (p FolderPatch) Empty() bool {
	return p.FolderName == nil
}
