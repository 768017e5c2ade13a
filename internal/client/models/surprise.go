package models

import "time"

// Surprise is a persisted record as returned by the server.
type Surprise struct {
	ID          string
	CoupleName  string
	StartDate   string
	Message     string
	YoutubeLink string
	PlanID      string
	Status      string
	PhotoURLs   []string
	CreatedAt   time.Time
}

// PhotoMeta describes a photo announced in a creation request.
type PhotoMeta struct {
	Name        string
	ContentType string
	Size        int64
}

// NewSurprise is a creation request.
type NewSurprise struct {
	CoupleName  string
	StartDate   string
	Message     string
	YoutubeLink string
	PlanID      string
	Photos      []PhotoMeta
}

// CreatedSurprise is the server answer to a creation request: the new id
// and one upload task per announced photo.
type CreatedSurprise struct {
	ID      string
	Uploads []UploadTask
}

// Session identifies the signed-in user.
type Session struct {
	UserID string
	Name   string
	Email  string
}
