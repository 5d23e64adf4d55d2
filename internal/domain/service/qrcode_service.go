package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateBakerQR renders a PNG QR code pointing to the baker's public page
	GenerateBakerQR(profileID uuid.UUID) ([]byte, error)

	// BakerURL returns the public page URL encoded in the baker's QR code
	BakerURL(profileID uuid.UUID) string
}
