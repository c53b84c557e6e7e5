package qrcode

import (
	"fmt"
	"strings"

	"dealdrop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// favoritePayloadPrefix is the deep-link scheme the mobile app registers for
// scanned favorite codes.
const favoritePayloadPrefix = "dealdrop://vendor/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateFavoriteQR generates a QR code that favorites a vendor when scanned
func (s *qrcodeService) GenerateFavoriteQR(vendorID uuid.UUID) ([]byte, error) {
	payload := favoritePayloadPrefix + vendorID.String()

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseFavoriteQR parses QR code data and returns the vendor ID
func (s *qrcodeService) ParseFavoriteQR(qrData string) (uuid.UUID, error) {
	if !strings.HasPrefix(qrData, favoritePayloadPrefix) {
		return uuid.Nil, fmt.Errorf("invalid QR code payload: %s", qrData)
	}

	vendorID, err := uuid.Parse(strings.TrimPrefix(qrData, favoritePayloadPrefix))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse vendor ID: %w", err)
	}

	return vendorID, nil
}
