// Package synth defines the narrow contract to the external voice-cloning
// engine and its exec, http and mock implementations. Keeping the engine
// behind this interface is what keeps it swappable without touching UI code.
package synth

import "context"

// Request carries one synthesis job. ReferenceWAV is the normalized voice
// sample; it is base64-encoded on the wire by the JSON codec.
type Request struct {
	Text         string `json:"text"`
	Language     string `json:"language"`
	SampleRate   int    `json:"sample_rate"`
	ReferenceWAV []byte `json:"reference_wav"`
}

// Engine produces WAV audio for a request.
type Engine interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
	Health(ctx context.Context) error
}
