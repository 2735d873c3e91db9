package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_PNG(t *testing.T) {
	out, err := NewRenderer("H").PNG("4821", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestRenderer_DefaultSize(t *testing.T) {
	out, err := NewRenderer("").PNG("4821", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}
