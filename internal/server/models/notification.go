package models

import "time"

const NotificationViewed = "viewed"

type Notification struct {
	ID         string
	UserID     string
	SurpriseID string
	Type       string
	Message    string
	Read       bool
	CreatedAt  time.Time
}
