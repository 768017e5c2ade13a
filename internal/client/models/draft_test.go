package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

func TestDraft_SlotFormat(t *testing.T) {
	d := Draft{
		CoupleName: "Ana & Bruno",
		StartDate:  "2023-01-01",
		Message:    "...",
		PlanID:     surprise.PlanBasic,
		FileIDs:    []string{"file_1_a", "file_1_b"},
		Status:     string(surprise.StatusDraft),
		CreatedAt:  time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "Ana & Bruno", raw["coupleName"])
	assert.Equal(t, "2023-01-01", raw["startDate"])
	assert.Equal(t, []any{"file_1_a", "file_1_b"}, raw["fileIds"])
	assert.Equal(t, "draft", raw["status"])
	_, hasVideo := raw["youtubeLink"]
	assert.False(t, hasVideo)
}

func TestDraft_Content(t *testing.T) {
	d := Draft{CoupleName: "A", StartDate: "2020-01-01", Message: "m", YoutubeLink: "https://youtu.be/x", PlanID: "premium"}
	assert.Equal(t, surprise.Content{
		CoupleName:  "A",
		StartDate:   "2020-01-01",
		Message:     "m",
		YoutubeLink: "https://youtu.be/x",
		PlanID:      "premium",
	}, d.Content())
}
