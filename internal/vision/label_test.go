package vision

import (
	"errors"
	"testing"
)

func TestResolveLabel(t *testing.T) {
	cases := []struct {
		name  string
		probs []float32
		want  Emotion
	}{
		{"clear maximum", []float32{0.01, 0.02, 0.05, 0.8, 0.05, 0.04, 0.03}, EmotionHappy},
		{"last index wins", []float32{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.4}, EmotionSurprise},
		{"tie resolves to lowest index", []float32{0.2, 0.2, 0.1, 0.1, 0.1, 0.1, 0.2}, EmotionAngry},
		{"all equal resolves to first", []float32{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}, EmotionAngry},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveLabel(tc.probs)
			if err != nil {
				t.Fatalf("ResolveLabel: %v", err)
			}
			if got != tc.want {
				t.Fatalf("label = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveLabelRejectsWrongShape(t *testing.T) {
	for _, n := range []int{0, 1, 6, 8, 1000} {
		probs := make([]float32, n)
		if _, err := ResolveLabel(probs); !errors.Is(err, ErrShape) {
			t.Fatalf("len %d: err = %v, want ErrShape", n, err)
		}
	}
}
