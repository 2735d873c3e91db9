// Package qrcode renders delivery codes as PNG QR images.
package qrcode

import (
	"strings"

	"hyperlocal/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

type Renderer struct {
	level qrcode.RecoveryLevel
}

var _ ports.QRRenderer = Renderer{}

// NewRenderer takes a recovery level of L, M, Q or H; anything else means M.
func NewRenderer(level string) Renderer {
	var l qrcode.RecoveryLevel
	switch strings.ToUpper(level) {
	case "L":
		l = qrcode.Low
	case "Q":
		l = qrcode.High
	case "H":
		l = qrcode.Highest
	default:
		l = qrcode.Medium
	}
	return Renderer{level: l}
}

func (r Renderer) PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(content, r.level, size)
	if err != nil {
		return nil, errors.Wrap(err, "render qr code")
	}
	return png, nil
}
