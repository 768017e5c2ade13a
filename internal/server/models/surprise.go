package models

import "time"

// Surprise is a persisted surprise page. Photos are loaded separately and
// ordered by OrderIndex.
type Surprise struct {
	ID          string
	UserID      string
	CoupleName  string
	StartDate   string
	Message     string
	YoutubeLink string
	PlanID      string
	Status      string
	Photos      []*Photo
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// ActivatedAt is set on the draft -> active transition and starts the
	// plan access window.
	ActivatedAt *time.Time
}
