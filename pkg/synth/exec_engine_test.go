package synth_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_cloning/pkg/synth"
)

func TestNewExecEngineRejectsBadCommands(t *testing.T) {
	testCases := []struct {
		name    string
		command string
	}{
		{name: "empty", command: ""},
		{name: "blank", command: "   "},
		{name: "unbalanced quote", command: `synth --voice "broken`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := synth.NewExecEngine(tc.command)
			assert.Error(t, err)
		})
	}
}

// cat echoes stdin to stdout, which makes it a convenient stand-in for an
// engine binary: the JSON request comes back as the "audio".
func TestExecEngineRunsCommand(t *testing.T) {
	engine, err := synth.NewExecEngine("cat")
	require.NoError(t, err)

	req := synth.Request{
		Text:         "hello",
		Language:     "en",
		SampleRate:   22050,
		ReferenceWAV: []byte{1, 2, 3},
	}

	out, err := engine.Synthesize(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	var echoed synth.Request
	require.NoError(t, json.Unmarshal(out, &echoed))
	assert.Equal(t, req, echoed)
}

func TestExecEngineCommandFailure(t *testing.T) {
	engine, err := synth.NewExecEngine("false")
	require.NoError(t, err)

	_, err = engine.Synthesize(context.Background(), synth.Request{Text: "hello"})
	assert.Error(t, err)
}

func TestExecEngineHealth(t *testing.T) {
	engine, err := synth.NewExecEngine("cat")
	require.NoError(t, err)
	assert.NoError(t, engine.Health(context.Background()))

	missing, err := synth.NewExecEngine("definitely-not-an-installed-binary")
	require.NoError(t, err)
	assert.Error(t, missing.Health(context.Background()))
}
