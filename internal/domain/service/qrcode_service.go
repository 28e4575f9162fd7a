package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderTrackingQR generates a PNG QR code that links to the order tracking page
	GenerateOrderTrackingQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderTrackingQR parses QR code payload and returns the order ID
	ParseOrderTrackingQR(qrData string) (uuid.UUID, error)
}
