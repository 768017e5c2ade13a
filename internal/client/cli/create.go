package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lovesurprise/internal/client/drafts"
	"github.com/dmitrijs2005/lovesurprise/internal/client/services"
	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

var getLines = GetLines
var getMultiline = GetMultiline

func (a *App) Plans(ctx context.Context) error {
	for _, p := range surprise.Plans() {
		access := "forever"
		if p.Access > 0 {
			access = fmt.Sprintf("%d days", int(p.Access.Hours()/24))
		}
		video := "no video"
		if p.AllowVideo {
			video = "YouTube video"
		}
		fmt.Fprintf(a.out, "%-8s %-8s %s  up to %d photos, %s, access %s\n", p.ID, p.Name, p.Price, p.MaxPhotos, video, access)
	}
	return nil
}

// Create asks for the surprise content and keeps it as a local draft.
// When already logged in the draft is handed off right away.
func (a *App) Create(ctx context.Context) error {
	in := services.DraftInput{}
	var err error

	if in.PlanID, err = getSimpleText(a.reader, "Plan (basic or premium)", a.out); err != nil {
		return err
	}
	in.PlanID = strings.ToLower(in.PlanID)
	plan, err := surprise.LookupPlan(in.PlanID)
	if err != nil {
		return a.report(err)
	}

	if in.CoupleName, err = getSimpleText(a.reader, "Couple name", a.out); err != nil {
		return err
	}
	if in.StartDate, err = getSimpleText(a.reader, "Start date of the relationship (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if in.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}
	if plan.AllowVideo {
		if in.YoutubeLink, err = getSimpleText(a.reader, "YouTube link (optional)", a.out); err != nil {
			return err
		}
	}
	prompt := fmt.Sprintf("Photo file paths, one per line (up to %d)", plan.MaxPhotos)
	if in.PhotoPaths, err = getLines(a.reader, prompt, a.out); err != nil {
		return err
	}

	attemptID, err := a.draftService.Create(ctx, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Draft saved (%s).\n", attemptID)

	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Register or log in to publish it.")
		return nil
	}
	return a.Resume(ctx)
}

// Discard drops a pending draft and its staged photos.
func (a *App) Discard(ctx context.Context, attemptID string) error {
	if err := a.draftService.Discard(ctx, attemptID); err != nil {
		if errors.Is(err, drafts.ErrSlotEmpty) {
			fmt.Fprintf(a.out, "No pending draft %s.\n", attemptID)
			return err
		}
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Draft %s discarded.\n", attemptID)
	return nil
}

// Drafts lists drafts still waiting for a handoff, oldest first.
func (a *App) Drafts(ctx context.Context) error {
	ids, err := a.draftService.Pending(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No pending drafts.")
		return nil
	}
	for _, id := range ids {
		d, err := a.draftService.Get(ctx, id)
		if err != nil {
			fmt.Fprintf(a.out, "%s  (unreadable: %v)\n", id, err)
			continue
		}
		fmt.Fprintf(a.out, "%s  %s  %s  %d photos  %s\n", id, d.PlanID, d.CoupleName, len(d.FileIDs), d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
