package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

func (a *App) List(ctx context.Context) error {
	items, err := a.surpriseService.List(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No surprises yet. Use 'create'.")
		return nil
	}
	for _, s := range items {
		fmt.Fprintf(a.out, "%s  %-7s  %-7s  %s\n", s.ID, s.Status, s.PlanID, s.CoupleName)
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	s, err := a.surpriseService.Show(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printSurprise(s)
	return nil
}

// View opens the public page of a surprise, as its recipient would.
func (a *App) View(ctx context.Context, id string) error {
	s, err := a.surpriseService.View(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printSurprise(s)
	return nil
}

func (a *App) printSurprise(s *models.Surprise) {
	fmt.Fprintf(a.out, "%s\n", s.CoupleName)
	fmt.Fprintf(a.out, "Status: %s, plan: %s\n", s.Status, s.PlanID)

	if start, err := time.ParseInLocation(surprise.DateLayout, s.StartDate, time.Local); err == nil {
		e := surprise.Since(start, a.now())
		fmt.Fprintf(a.out, "Together for %d years, %d months, %d days, %02d:%02d:%02d\n",
			e.Years, e.Months, e.Days, e.Hours, e.Minutes, e.Seconds)
	}

	if s.Message != "" {
		fmt.Fprintf(a.out, "\n%s\n\n", s.Message)
	}
	if embed := surprise.EmbedURL(s.YoutubeLink); embed != "" {
		fmt.Fprintf(a.out, "Video: %s\n", embed)
	}
	for i, u := range s.PhotoURLs {
		fmt.Fprintf(a.out, "Photo %d: %s\n", i+1, u)
	}
}
