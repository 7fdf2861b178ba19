package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEmptyText           = errors.New("text must not be empty")
	ErrTextTooLong         = errors.New("text exceeds the maximum length")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrEmptySample         = errors.New("voice sample must not be empty")
	ErrSampleTooShort      = errors.New("voice sample is shorter than the minimum duration")
	ErrSampleTooLong       = errors.New("voice sample is longer than the maximum duration")
	ErrSynthesisNotFound   = errors.New("synthesis not found or expired")
)

// Language is an entry of the fixed language set supported by the model.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SynthesisRequest is a single (text, language, voice sample) tuple. It is
// consumed by exactly one engine invocation and carries no identity of its own.
type SynthesisRequest struct {
	Text     string
	Language string
	Sample   Audio
}

// Synthesis is the outcome of one engine invocation, held in memory until
// downloaded or evicted.
type Synthesis struct {
	ID        string        `json:"id"`
	Language  string        `json:"language"`
	Duration  time.Duration `json:"-"`
	Seconds   float64       `json:"seconds"`
	WAV       []byte        `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

type SynthesisUsecase interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (Synthesis, error)
	// GetAudio returns the synthesized audio, transcoded on demand.
	GetAudio(ctx context.Context, id string, format AudioFormat) (Audio, error)
	Languages() []Language
	Health(ctx context.Context) error
}
