package vision

import (
	"errors"
	"fmt"
)

// Emotion is one of the fixed labels the classifier scores.
type Emotion string

const (
	EmotionAngry    Emotion = "Angry"
	EmotionDisgust  Emotion = "Disgust"
	EmotionFear     Emotion = "Fear"
	EmotionHappy    Emotion = "Happy"
	EmotionNeutral  Emotion = "Neutral"
	EmotionSad      Emotion = "Sad"
	EmotionSurprise Emotion = "Surprise"
)

// Labels is the authoritative ordinal mapping for the classifier output.
// Index i of a probability vector always scores Labels[i].
var Labels = [OutputCount]Emotion{
	EmotionAngry,
	EmotionDisgust,
	EmotionFear,
	EmotionHappy,
	EmotionNeutral,
	EmotionSad,
	EmotionSurprise,
}

// ErrShape marks probability vectors that violate the classifier contract.
var ErrShape = errors.New("unexpected output shape")

// ResolveLabel returns the label at the arg-max of probs. Exact ties resolve
// to the lowest index so resolution is reproducible.
func ResolveLabel(probs []float32) (Emotion, error) {
	if len(probs) != OutputCount {
		return "", fmt.Errorf("%w: got %d scores, want %d", ErrShape, len(probs), OutputCount)
	}

	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return Labels[best], nil
}
