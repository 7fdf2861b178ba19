package synth

import (
	"context"
	"time"

	"voice_cloning/pkg/audio"
)

// MockEngine synthesizes a short silent WAV. It exists for tests and for
// running the UI without a model.
type MockEngine struct {
	delay time.Duration
}

var _ Engine = (*MockEngine)(nil)

func NewMockEngine() *MockEngine {
	return &MockEngine{delay: 50 * time.Millisecond}
}

func (m *MockEngine) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(m.delay):
	}

	rate := req.SampleRate
	if rate <= 0 {
		rate = 22050
	}

	return audio.EncodeSilenceWAV(rate, time.Second), nil
}

func (m *MockEngine) Health(ctx context.Context) error {
	return nil
}
