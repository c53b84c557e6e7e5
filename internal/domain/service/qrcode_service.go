package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateFavoriteQR generates a QR code that favorites a vendor when scanned
	GenerateFavoriteQR(vendorID uuid.UUID) ([]byte, error)

	// ParseFavoriteQR parses QR code data and returns the vendor ID
	ParseFavoriteQR(qrData string) (uuid.UUID, error)
}
