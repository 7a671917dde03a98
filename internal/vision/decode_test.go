package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeGrayFromPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 12), G: uint8(y * 25), B: 40, A: 255})
		}
	}

	gray, err := DecodeGray(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeGray: %v", err)
	}
	if got := gray.Bounds(); got.Dx() != 20 || got.Dy() != 10 {
		t.Fatalf("bounds = %v, want 20x10", got)
	}
}

func TestDecodeGrayFromJPEG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	if _, err := DecodeGray(buf.Bytes()); err != nil {
		t.Fatalf("DecodeGray: %v", err)
	}
}

func TestDecodeGrayRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not an image")},
		{"truncated header", []byte{0x89, 0x50, 0x4e}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeGray(tc.data)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("err = %v, want ErrDecode", err)
			}
		})
	}
}
