package ticket

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"campusevents/internal/domain"
)

const qrSizePx = 256

type qrRenderer struct{}

// NewQRRenderer returns a TicketRenderer that encodes the payload as a QR
// code PNG and wraps it in a data URI so clients can embed it directly.
func NewQRRenderer() domain.TicketRenderer {
	return &qrRenderer{}
}

func (r *qrRenderer) Render(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSizePx)
	if err != nil {
		return "", fmt.Errorf("failed to encode ticket QR: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
