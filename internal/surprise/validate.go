package surprise

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the wire and storage format of a start date.
const DateLayout = "2006-01-02"

const (
	MaxCoupleNameLen = 100
	MaxMessageLen    = 2000
)

// Content is the user-authored part of a surprise.
type Content struct {
	CoupleName  string
	StartDate   string
	Message     string
	YoutubeLink string
	PlanID      string
}

// Validate checks content plus the number of photos against the plan.
// Every failure wraps ErrInvalidDraft (or ErrUnknownPlan).
func Validate(c Content, photoCount int) error {
	plan, err := LookupPlan(c.PlanID)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(c.CoupleName)
	switch {
	case name == "":
		return fmt.Errorf("%w: couple name is required", ErrInvalidDraft)
	case utf8.RuneCountInString(name) > MaxCoupleNameLen:
		return fmt.Errorf("%w: couple name is longer than %d characters", ErrInvalidDraft, MaxCoupleNameLen)
	}

	if _, err := time.Parse(DateLayout, c.StartDate); err != nil {
		return fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidDraft)
	}

	if utf8.RuneCountInString(c.Message) > MaxMessageLen {
		return fmt.Errorf("%w: message is longer than %d characters", ErrInvalidDraft, MaxMessageLen)
	}

	if c.YoutubeLink != "" {
		if !plan.AllowVideo {
			return fmt.Errorf("%w: plan %s does not include a video", ErrInvalidDraft, plan.ID)
		}
		if ExtractYouTubeID(c.YoutubeLink) == "" {
			return fmt.Errorf("%w: unrecognised YouTube link", ErrInvalidDraft)
		}
	}

	if photoCount < 1 {
		return fmt.Errorf("%w: at least one photo is required", ErrInvalidDraft)
	}
	if photoCount > plan.MaxPhotos {
		return fmt.Errorf("%w: plan %s allows at most %d photos, got %d", ErrInvalidDraft, plan.ID, plan.MaxPhotos, photoCount)
	}

	return nil
}
