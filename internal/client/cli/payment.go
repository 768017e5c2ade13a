package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lovesurprise/internal/client/services"
)

// Pay confirms the payment of a surprise, which makes its page public.
func (a *App) Pay(ctx context.Context, id string) error {
	link, err := a.paymentService.Confirm(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyProcessed) {
			fmt.Fprintln(a.out, "This payment was already processed.")
			return err
		}
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Payment confirmed! Your surprise is live at %s\nUse 'share %s' to export the QR code.\n", link, id)
	return nil
}

func (a *App) Status(ctx context.Context, id string) error {
	active, err := a.paymentService.CheckStatus(ctx, id)
	if err != nil {
		return a.report(err)
	}
	if active {
		fmt.Fprintln(a.out, "Active.")
	} else {
		fmt.Fprintln(a.out, "Not active.")
	}
	return nil
}
