package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"bakery/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_WithoutConfigSection(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_BakerURL(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M", BaseURL: "https://bakery.example.com/"}}
	svc := NewQRCodeService(cfg)
	profileID := uuid.New()

	assert.Equal(t, "https://bakery.example.com/bakers/"+profileID.String(), svc.BakerURL(profileID))
}

func TestQRCodeService_GenerateBakerQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		svc := newQRCodeService(size, "M", "https://bakery.example.com")

		pngBytes, err := svc.GenerateBakerQR(uuid.New())
		require.NoError(t, err)
		require.NotEmpty(t, pngBytes)

		img, err := png.Decode(bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}
