package audio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_cloning/pkg/audio"
)

func TestProbeSilenceWAV(t *testing.T) {
	buf := audio.EncodeSilenceWAV(22050, 10*time.Second)

	info, err := audio.NewWAVProber().Probe(buf)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, info.Duration.Seconds(), 0.01)
	assert.Equal(t, 22050, info.SampleRate)
	assert.Equal(t, 1, info.Channels)
}

func TestProbeRejectsGarbage(t *testing.T) {
	testCases := []struct {
		name string
		buf  []byte
	}{
		{name: "empty", buf: nil},
		{name: "not riff", buf: []byte("definitely not audio data, just text")},
		{name: "truncated header", buf: []byte("RIFF")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := audio.NewWAVProber().Probe(tc.buf)
			assert.Error(t, err)
		})
	}
}
