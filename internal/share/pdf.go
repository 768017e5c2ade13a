package share

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	qrSideMM   = 100.0
	qrImage    = "qrcode"
	pdfTitle   = "LoveSurprise"
	pdfSubline = "Escaneie o QR Code para acessar sua surpresa"
)

// FileName is the download name of the PDF of a surprise.
func FileName(id string) string {
	return "lovesurprise-qrcode-" + id + ".pdf"
}

// PDF renders a single A4 page with the QR code of link centred on it,
// the link itself below and the generation date in the footer.
func PDF(link string, now time.Time) ([]byte, error) {
	png, err := QRCode(link, DefaultQRSize)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(pdfTitle, true)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()

	centered := func(y float64, s string) {
		doc.Text((pageW-doc.GetStringWidth(s))/2, y, s)
	}

	doc.SetFont("Helvetica", "B", 24)
	centered(30, pdfTitle)

	doc.SetFont("Helvetica", "", 16)
	centered(45, pdfSubline)

	qrX := (pageW - qrSideMM) / 2
	qrY := (pageH - qrSideMM) / 2
	doc.RegisterImageOptionsReader(qrImage, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	doc.ImageOptions(qrImage, qrX, qrY, qrSideMM, qrSideMM, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	doc.SetFont("Helvetica", "", 12)
	centered(qrY+qrSideMM+15, "Link direto:")

	doc.SetTextColor(0, 102, 204)
	centered(qrY+qrSideMM+25, link)
	doc.SetTextColor(0, 0, 0)

	doc.SetFont("Helvetica", "", 10)
	centered(pageH-20, "Gerado em "+now.Format("02/01/2006"))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
