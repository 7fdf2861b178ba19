// Package audio converts and inspects in-memory audio buffers. All ffmpeg
// work runs over pipes so session audio never touches the file system.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"voice_cloning/entity"
)

// trimFilter drops leading and trailing silence from a reference sample,
// mirroring the -40 dB trim the cloning model was tuned against.
const trimFilter = "silenceremove=start_periods=1:start_threshold=-40dB:stop_periods=1:stop_threshold=-40dB"

type Converter struct {
	sampleRate int
}

var _ entity.AudioConverter = (*Converter)(nil)

func NewConverter(sampleRate int) *Converter {
	return &Converter{sampleRate: sampleRate}
}

// NormalizeSample converts an uploaded sample to mono 16-bit PCM WAV at the
// engine sample rate with silence trimmed.
func (c *Converter) NormalizeSample(ctx context.Context, src entity.Audio) (entity.Audio, error) {
	if len(src.Body) == 0 {
		return entity.Audio{}, entity.ErrEmptySample
	}

	out := new(bytes.Buffer)

	err := c.run(
		bytes.NewReader(src.Body),
		out,
		ffmpeg.KwArgs{"f": string(src.Format)},
		ffmpeg.KwArgs{
			"f":      "wav",
			"ar":     c.sampleRate,
			"ac":     1,
			"acodec": "pcm_s16le",
			"af":     trimFilter,
		},
	)
	if err != nil {
		return entity.Audio{}, fmt.Errorf("normalize sample: %w", err)
	}

	return entity.Audio{Format: entity.FormatWAV, Body: out.Bytes()}, nil
}

// Transcode converts between supported containers, e.g. WAV <-> MP3.
func (c *Converter) Transcode(ctx context.Context, src entity.Audio, to entity.AudioFormat) (entity.Audio, error) {
	if src.Format == to {
		return src, nil
	}

	out := new(bytes.Buffer)

	outputArgs := ffmpeg.KwArgs{"f": string(to)}
	if to == entity.FormatMP3 {
		outputArgs["ab"] = "192k"
	}

	err := c.run(
		bytes.NewReader(src.Body),
		out,
		ffmpeg.KwArgs{"f": string(src.Format)},
		outputArgs,
	)
	if err != nil {
		return entity.Audio{}, fmt.Errorf("transcode %s to %s: %w", src.Format, to, err)
	}

	return entity.Audio{Format: to, Body: out.Bytes()}, nil
}

func (c *Converter) run(in io.Reader, out io.Writer, inputArgs, outputArgs ffmpeg.KwArgs) error {
	return ffmpeg.Input("pipe:", inputArgs).
		Output("pipe:", outputArgs).
		WithInput(in).
		WithOutput(out).
		OverWriteOutput().
		Run()
}
