package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lovesurprise/internal/filex"
	"github.com/dmitrijs2005/lovesurprise/internal/share"
)

// Share prints the public link and its share intents and writes the QR code
// as PNG and PDF to the export directory.
func (a *App) Share(ctx context.Context, id string) error {
	s, err := a.surpriseService.Show(ctx, id)
	if err != nil {
		return a.report(err)
	}

	link := share.Link(a.config.ShareBaseURL, id)
	fmt.Fprintf(a.out, "Link: %s\n", link)
	fmt.Fprintf(a.out, "WhatsApp: %s\n", share.WhatsAppURL(link, s.CoupleName))
	fmt.Fprintf(a.out, "Facebook: %s\n", share.FacebookURL(link))

	png, err := share.QRCode(link, share.DefaultQRSize)
	if err != nil {
		return a.report(err)
	}
	pngPath, err := filex.WriteExport(a.config.ExportDir, strings.TrimSuffix(share.FileName(id), ".pdf")+".png", png)
	if err != nil {
		return a.report(err)
	}

	doc, err := share.PDF(link, a.now())
	if err != nil {
		return a.report(err)
	}
	pdfPath, err := filex.WriteExport(a.config.ExportDir, share.FileName(id), doc)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "QR code: %s\nPDF: %s\n", pngPath, pdfPath)
	return nil
}
