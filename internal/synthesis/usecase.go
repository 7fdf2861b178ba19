// Package synthesis orchestrates voice cloning: it validates user input,
// normalizes the reference sample, delegates to the external engine and keeps
// the result available for playback and download.
package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"voice_cloning/config"
	"voice_cloning/entity"
	"voice_cloning/internal/telemetry/metric"
	"voice_cloning/pkg/logger"
	"voice_cloning/pkg/synth"
)

const traceName = "Synthesis-Usecase"

// supportedLanguages is the fixed set the multilingual cloning model accepts.
var supportedLanguages = []entity.Language{
	{Name: "English", Code: "en"},
	{Name: "French", Code: "fr-fr"},
	{Name: "Portuguese", Code: "pt-br"},
}

type Usecase struct {
	engine    synth.Engine
	converter entity.AudioConverter
	prober    entity.AudioProber
	registry  *Registry
	l         logger.Interface

	sampleRate   int
	maxTextChars int
	minSample    time.Duration
	maxSample    time.Duration
}

var _ entity.SynthesisUsecase = (*Usecase)(nil)

func NewUsecase(
	cfg *config.Config,
	engine synth.Engine,
	converter entity.AudioConverter,
	prober entity.AudioProber,
	l logger.Interface,
) *Usecase {
	registry := NewRegistry(time.Duration(cfg.TTS.ResultTTLSeconds)*time.Second, l)

	return &Usecase{
		engine:       engine,
		converter:    converter,
		prober:       prober,
		registry:     registry,
		l:            l,
		sampleRate:   cfg.TTS.SampleRate,
		maxTextChars: cfg.TTS.MaxTextChars,
		minSample:    time.Duration(cfg.TTS.MinSampleSeconds) * time.Second,
		maxSample:    time.Duration(cfg.TTS.MaxSampleSeconds) * time.Second,
	}
}

// Synthesize runs one (text, language, sample) tuple through the engine.
// All validation happens before the engine is invoked.
func (u *Usecase) Synthesize(ctx context.Context, req entity.SynthesisRequest) (entity.Synthesis, error) {
	ctx, span := otel.Tracer(traceName).Start(ctx, "Synthesize")
	defer span.End()

	span.SetAttributes(attribute.String("language", req.Language))

	text, err := u.validateText(req.Text)
	if err != nil {
		metric.ValidationRejects.WithLabelValues("text").Inc()

		return entity.Synthesis{}, err
	}

	if err := u.validateLanguage(req.Language); err != nil {
		metric.ValidationRejects.WithLabelValues("language").Inc()

		return entity.Synthesis{}, err
	}

	reference, err := u.prepareSample(ctx, req.Sample)
	if err != nil {
		metric.ValidationRejects.WithLabelValues("sample").Inc()

		return entity.Synthesis{}, err
	}

	span.AddEvent("sample normalized, calling engine")

	start := time.Now()

	wav, err := u.engine.Synthesize(ctx, synth.Request{
		Text:         text,
		Language:     req.Language,
		SampleRate:   u.sampleRate,
		ReferenceWAV: reference,
	})

	metric.SynthesisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metric.SynthesisTotal.WithLabelValues(req.Language, "error").Inc()

		return entity.Synthesis{}, fmt.Errorf("engine synthesis: %w", err)
	}

	metric.SynthesisTotal.WithLabelValues(req.Language, "ok").Inc()

	info, err := u.prober.Probe(wav)
	if err != nil {
		return entity.Synthesis{}, fmt.Errorf("probe synthesized audio: %w", err)
	}

	syn := entity.Synthesis{
		ID:        uuid.NewString(),
		Language:  req.Language,
		Duration:  info.Duration,
		Seconds:   info.Duration.Seconds(),
		WAV:       wav,
		CreatedAt: time.Now(),
	}

	u.registry.Put(syn)

	u.l.Info("synthesis %s done: language %s, %.2fs of audio", syn.ID, syn.Language, syn.Seconds)

	return syn, nil
}

// GetAudio returns a stored synthesis, transcoding it on demand. Only WAV and
// MP3 are offered for download.
func (u *Usecase) GetAudio(ctx context.Context, id string, format entity.AudioFormat) (entity.Audio, error) {
	ctx, span := otel.Tracer(traceName).Start(ctx, "GetAudio")
	defer span.End()

	span.SetAttributes(attribute.String("id", id), attribute.String("format", string(format)))

	if format != entity.FormatWAV && format != entity.FormatMP3 {
		return entity.Audio{}, entity.ErrUnsupportedFormat
	}

	syn, ok := u.registry.Get(id)
	if !ok {
		return entity.Audio{}, entity.ErrSynthesisNotFound
	}

	if format == entity.FormatWAV {
		return entity.Audio{Format: entity.FormatWAV, Body: syn.WAV}, nil
	}

	if body, ok := u.registry.GetTranscoded(id, format); ok {
		return entity.Audio{Format: format, Body: body}, nil
	}

	converted, err := u.converter.Transcode(ctx, entity.Audio{Format: entity.FormatWAV, Body: syn.WAV}, format)
	if err != nil {
		return entity.Audio{}, fmt.Errorf("transcode synthesis %s: %w", id, err)
	}

	u.registry.PutTranscoded(id, format, converted.Body)

	return converted, nil
}

func (u *Usecase) Languages() []entity.Language {
	out := make([]entity.Language, len(supportedLanguages))
	copy(out, supportedLanguages)

	return out
}

func (u *Usecase) Health(ctx context.Context) error {
	return u.engine.Health(ctx)
}

func (u *Usecase) validateText(text string) (string, error) {
	text = strings.TrimSpace(text)

	if text == "" {
		return "", entity.ErrEmptyText
	}

	if len([]rune(text)) > u.maxTextChars {
		return "", fmt.Errorf("%w: %d characters, limit %d", entity.ErrTextTooLong, len([]rune(text)), u.maxTextChars)
	}

	return text, nil
}

func (u *Usecase) validateLanguage(code string) error {
	for _, lang := range supportedLanguages {
		if lang.Code == code {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", entity.ErrUnsupportedLanguage, code)
}

// prepareSample normalizes the uploaded sample and enforces the duration gate.
func (u *Usecase) prepareSample(ctx context.Context, sample entity.Audio) ([]byte, error) {
	if len(sample.Body) == 0 {
		return nil, entity.ErrEmptySample
	}

	normalized, err := u.converter.NormalizeSample(ctx, sample)
	if err != nil {
		return nil, fmt.Errorf("normalize sample: %w", err)
	}

	info, err := u.prober.Probe(normalized.Body)
	if err != nil {
		return nil, fmt.Errorf("probe sample: %w", err)
	}

	if info.Duration < u.minSample {
		return nil, fmt.Errorf("%w: %.1fs, need at least %.0fs",
			entity.ErrSampleTooShort, info.Duration.Seconds(), u.minSample.Seconds())
	}

	if info.Duration > u.maxSample {
		return nil, fmt.Errorf("%w: %.1fs, limit %.0fs",
			entity.ErrSampleTooLong, info.Duration.Seconds(), u.maxSample.Seconds())
	}

	return normalized.Body, nil
}
