package vision

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Model input contract: one batched 48x48 single-channel tensor.
const (
	inputSize   = 48
	tensorLen   = 1 * inputSize * inputSize * 1
	OutputCount = 7
)

// ErrPreprocess marks pixel grids that cannot be shaped into the model input.
var ErrPreprocess = errors.New("unpreprocessable image")

// Preprocess scales a grayscale grid of any dimensions to 48x48 (interpolated,
// never cropped) and maps intensities to [0,1] float32, flattened in the
// 1x48x48x1 layout the classifier expects.
func Preprocess(src *image.Gray) ([]float32, error) {
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: zero-sized source grid", ErrPreprocess)
	}

	dst := image.NewGray(image.Rect(0, 0, inputSize, inputSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	out := make([]float32, tensorLen)
	for y := 0; y < inputSize; y++ {
		for x := 0; x < inputSize; x++ {
			out[y*inputSize+x] = float32(dst.GrayAt(x, y).Y) / 255.0
		}
	}
	return out, nil
}
