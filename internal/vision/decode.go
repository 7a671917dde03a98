package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
)

// ErrDecode marks uploads that cannot be turned into a pixel grid.
var ErrDecode = errors.New("undecodable image")

// DecodeGray decodes an uploaded image into a single-channel grayscale grid
// at its native dimensions. Color sources are collapsed to luminance in one
// draw pass so channels are never interpreted twice.
func DecodeGray(data []byte) (*image.Gray, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray, nil
}

func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Try JPEG and PNG explicitly (image.Decode may not recognize some)
		img, err = jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			img, err = png.Decode(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}
