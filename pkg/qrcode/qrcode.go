package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders check-in QR codes for confirmed registrations.
type QRService struct {
	baseURL string // e.g. "https://unbound.events/checkin/"
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateTicket returns a PNG QR code for a registration reference
// (e.g. "reg-42"), the same reference used on gateway receipts.
func (s *QRService) GenerateTicket(registrationRef string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", s.baseURL, registrationRef)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
