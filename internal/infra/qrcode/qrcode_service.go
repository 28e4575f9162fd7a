package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateOrderTrackingQR encodes the tracking URL of orderID as a PNG QR code
func (s *qrcodeService) GenerateOrderTrackingQR(orderID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.trackingURL(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderTrackingQR extracts the order ID from a scanned tracking URL
func (s *qrcodeService) ParseOrderTrackingQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	if s.baseURL != "" && !strings.HasPrefix(qrData, s.baseURL+"/") {
		return uuid.Nil, fmt.Errorf("QR code does not belong to this store: %s", qrData)
	}

	orderID, err := uuid.Parse(path.Base(parsed.Path))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}

func (s *qrcodeService) trackingURL(orderID uuid.UUID) string {
	if s.baseURL == "" {
		return "order:" + orderID.String()
	}

	return s.baseURL + "/" + orderID.String()
}
