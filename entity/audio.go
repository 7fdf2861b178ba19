package entity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// AudioFormat is the container format of an audio buffer.
type AudioFormat string

const (
	FormatWAV  AudioFormat = "wav"
	FormatMP3  AudioFormat = "mp3"
	FormatOGG  AudioFormat = "ogg"
	FormatFLAC AudioFormat = "flac"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ParseAudioFormat maps a file extension (with or without the leading dot)
// to a supported container format.
func ParseAudioFormat(ext string) (AudioFormat, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch AudioFormat(ext) {
	case FormatWAV, FormatMP3, FormatOGG, FormatFLAC:
		return AudioFormat(ext), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// ContentType returns the MIME type used when serving the buffer.
func (f AudioFormat) ContentType() string {
	switch f {
	case FormatMP3:
		return "audio/mpeg"
	case FormatOGG:
		return "audio/ogg"
	case FormatFLAC:
		return "audio/flac"
	default:
		return "audio/wav"
	}
}

// Audio is an in-memory audio buffer. It is never written to disk.
type Audio struct {
	Format AudioFormat
	Body   []byte
}

// AudioInfo describes a decoded WAV buffer.
type AudioInfo struct {
	Duration   time.Duration
	SampleRate int
	Channels   int
}

type AudioConverter interface {
	// NormalizeSample converts an uploaded sample to the canonical reference
	// format: mono 16-bit PCM WAV at the engine sample rate, silence trimmed.
	NormalizeSample(ctx context.Context, src Audio) (Audio, error)
	Transcode(ctx context.Context, src Audio, to AudioFormat) (Audio, error)
}

type AudioProber interface {
	Probe(wav []byte) (AudioInfo, error)
}
