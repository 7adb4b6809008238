package imageprocessor

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessAvatarResizesIntoBox(t *testing.T) {
	p := NewProcessor(70)

	out, err := p.ProcessAvatar(pngImage(t, 1000, 500))
	require.NoError(t, err)

	decoded, err := jpeg.Decode(out)
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.Equal(t, SizeAvatar.Width, bounds.Dx())
	assert.Equal(t, 62, bounds.Dy(), "aspect ratio preserved")
}

func TestProcessListingImageKeepsDimensions(t *testing.T) {
	p := NewProcessor(70)

	out, err := p.ProcessListingImage(pngImage(t, 640, 480))
	require.NoError(t, err)

	decoded, err := jpeg.Decode(out)
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.Equal(t, 640, bounds.Dx())
	assert.Equal(t, 480, bounds.Dy())
}

func TestProcessRejectsGarbage(t *testing.T) {
	p := NewProcessor(70)

	_, err := p.ProcessAvatar(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestIsValidImage(t *testing.T) {
	assert.True(t, IsValidImage(pngImage(t, 4, 4)))
	assert.False(t, IsValidImage(strings.NewReader("nope")))
}
