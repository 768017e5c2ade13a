package models

import (
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

// Draft is the surprise content kept in a local draft slot until the
// handoff submits it. FileIDs reference the staging store.
type Draft struct {
	CoupleName  string    `json:"coupleName"`
	StartDate   string    `json:"startDate"`
	Message     string    `json:"message"`
	YoutubeLink string    `json:"youtubeLink,omitempty"`
	PlanID      string    `json:"planId"`
	FileIDs     []string  `json:"fileIds"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (d Draft) Content() surprise.Content {
	return surprise.Content{
		CoupleName:  d.CoupleName,
		StartDate:   d.StartDate,
		Message:     d.Message,
		YoutubeLink: d.YoutubeLink,
		PlanID:      d.PlanID,
	}
}
