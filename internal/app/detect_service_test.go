package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"moodtunes/internal/model"
	"moodtunes/internal/vision"
)

type fakeModel struct {
	probs []float32
	err   error
	calls int
}

func (m *fakeModel) Infer(tensor []float32) ([]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.probs, nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []model.Detection
}

func (r *fakeRecorder) Publish(ctx context.Context, detection model.Detection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, detection)
	return nil
}

func facePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * y) % 256)})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDetectResolvesHighestScore(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewDetectService(&fakeModel{probs: []float32{0, 0, 0, 0.9, 0, 0.1, 0}}, recorder)

	emotion, err := svc.Detect(context.Background(), facePNG(t), "user-1")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if emotion != vision.EmotionHappy {
		t.Fatalf("emotion = %q, want Happy", emotion)
	}
	if len(recorder.events) != 1 || recorder.events[0].Emotion != "Happy" || recorder.events[0].UID != "user-1" {
		t.Fatalf("recorded events = %+v", recorder.events)
	}
}

func TestDetectRejectsUndecodableImage(t *testing.T) {
	fake := &fakeModel{probs: make([]float32, 7)}
	svc := NewDetectService(fake, nil)

	_, err := svc.Detect(context.Background(), []byte("not an image"), "")
	if !errors.Is(err, vision.ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	if fake.calls != 0 {
		t.Fatalf("model invoked %d times on bad input", fake.calls)
	}
}

func TestDetectWithoutModelIsUnavailable(t *testing.T) {
	svc := NewDetectService(nil, nil)

	_, err := svc.Detect(context.Background(), facePNG(t), "")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("err = %v, want ErrModelUnavailable", err)
	}
}

func TestDetectShapeViolationSurfaces(t *testing.T) {
	svc := NewDetectService(&fakeModel{probs: []float32{0.5, 0.5}}, nil)

	_, err := svc.Detect(context.Background(), facePNG(t), "")
	if !errors.Is(err, vision.ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}

func TestDetectInferenceFailure(t *testing.T) {
	svc := NewDetectService(&fakeModel{err: errors.New("session crashed")}, nil)

	_, err := svc.Detect(context.Background(), facePNG(t), "")
	if err == nil {
		t.Fatal("expected error on inference failure")
	}
	if errors.Is(err, ErrModelUnavailable) || errors.Is(err, vision.ErrDecode) {
		t.Fatalf("inference fault misclassified: %v", err)
	}
}
