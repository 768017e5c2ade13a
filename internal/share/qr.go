package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the PNG edge in pixels.
const DefaultQRSize = 512

// QRCode encodes content as a PNG with the highest error correction level.
func QRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(content, qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
