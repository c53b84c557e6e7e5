package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateFavoriteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	vendorID := uuid.New()

	qrBytes, err := service.GenerateFavoriteQR(vendorID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateFavoriteQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			vendorID := uuid.New()

			qrBytes, err := service.GenerateFavoriteQR(vendorID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseFavoriteQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	vendorID := uuid.New()

	parsedID, err := service.ParseFavoriteQR(favoritePayloadPrefix + vendorID.String())
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsedID)
}

func TestQRCodeService_ParseFavoriteQR_InvalidPrefix(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseFavoriteQR("https://example.com/vendor/" + uuid.New().String())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code payload")
}

func TestQRCodeService_ParseFavoriteQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseFavoriteQR(favoritePayloadPrefix + "not-a-valid-uuid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse vendor ID")
}
