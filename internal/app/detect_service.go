package app

import (
	"context"
	"fmt"
	"log"

	"moodtunes/internal/model"
	"moodtunes/internal/vision"
)

// EmotionModel is the loaded classifier contract: one preprocessed tensor in,
// one score vector over the fixed label set out.
type EmotionModel interface {
	Infer(tensor []float32) ([]float32, error)
}

// DetectionRecorder receives successful detection events for async
// persistence. Recording is best effort and never fails a detection.
type DetectionRecorder interface {
	Publish(ctx context.Context, detection model.Detection) error
}

// DetectService sequences the detection pipeline: decode, preprocess, infer,
// resolve. It is stateless across requests; every stage failure comes back as
// a discriminated error.
type DetectService struct {
	model    EmotionModel
	recorder DetectionRecorder
}

// NewDetectService builds the detect orchestrator. A nil model means the
// classifier artifact failed to load at startup; detection then refuses to
// serve instead of crashing per request. A nil recorder disables history.
func NewDetectService(model EmotionModel, recorder DetectionRecorder) *DetectService {
	return &DetectService{model: model, recorder: recorder}
}

// Detect classifies the uploaded image bytes into a single emotion label.
// uid may be empty for anonymous callers.
func (s *DetectService) Detect(ctx context.Context, imageData []byte, uid string) (vision.Emotion, error) {
	if s.model == nil {
		return "", ErrModelUnavailable
	}

	gray, err := vision.DecodeGray(imageData)
	if err != nil {
		return "", err
	}

	tensor, err := vision.Preprocess(gray)
	if err != nil {
		return "", err
	}

	probs, err := s.model.Infer(tensor)
	if err != nil {
		return "", fmt.Errorf("model inference failed: %w", err)
	}

	emotion, err := vision.ResolveLabel(probs)
	if err != nil {
		return "", err
	}

	if s.recorder != nil {
		event := model.Detection{UID: uid, Emotion: string(emotion)}
		if err := s.recorder.Publish(ctx, event); err != nil {
			log.Printf("publish detection event failed: %v", err)
		}
	}
	return emotion, nil
}
