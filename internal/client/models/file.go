package models

import "time"

// FileData is a photo picked by the user, before it is staged.
type FileData struct {
	Name        string
	ContentType string
	Content     []byte
}

// StagedFile is a FileData held in the local staging store under ID.
type StagedFile struct {
	ID string
	FileData
	CreatedAt time.Time
}

// UploadTask pairs a staged photo position with the presigned URL the
// server issued for it.
type UploadTask struct {
	PhotoID    string
	OrderIndex int
	URL        string
}
