package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://shop.example.com/orders"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderTrackingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateOrderTrackingQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseOrderTrackingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL+"/")
	orderID := uuid.New()

	got, err := service.ParseOrderTrackingQR(testBaseURL + "/" + orderID.String())

	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestQRCodeService_ParseOrderTrackingQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	tests := []struct {
		name string
		data string
	}{
		{"Foreign host", "https://evil.example.com/orders/" + uuid.NewString()},
		{"Not an order id", testBaseURL + "/not-a-uuid"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseOrderTrackingQR(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: testBaseURL}}
	service := NewQRCodeServiceFromConfig(cfg)

	qrBytes, err := service.GenerateOrderTrackingQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
}
