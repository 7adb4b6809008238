package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register png decoding for uploads
	"io"

	"golang.org/x/image/draw"
)

// ImageSize represents a target bounding box.
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

// SizeAvatar is the fixed avatar thumbnail written on upload.
var SizeAvatar = ImageSize{Name: "avatar", Width: 124, Height: 124}

// Processor normalizes uploaded images. Everything it emits is JPEG at
// the configured quality.
type Processor struct {
	quality int // JPEG quality (1-100)
}

// NewProcessor creates a new image processor.
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 70
	}
	return &Processor{
		quality: quality,
	}
}

// ProcessAvatar decodes, resizes to the avatar thumbnail box and encodes
// as JPEG.
func (p *Processor) ProcessAvatar(reader io.Reader) (io.Reader, error) {
	return p.process(reader, &SizeAvatar)
}

// ProcessListingImage re-encodes a listing or application image as JPEG
// without resizing.
func (p *Processor) ProcessListingImage(reader io.Reader) (io.Reader, error) {
	return p.process(reader, nil)
}

func (p *Processor) process(reader io.Reader, size *ImageSize) (io.Reader, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if size != nil {
		img = p.resize(img, size.Width, size.Height)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return &buf, nil
}

// resize scales an image into the bounding box, keeping aspect ratio.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// IsValidImage checks if the reader contains a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
