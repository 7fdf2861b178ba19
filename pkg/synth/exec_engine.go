package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sync"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// ExecEngine spawns an external TTS command per request. The request is
// written as a single JSON document on stdin and the synthesized WAV is read
// from stdout. The engine loads the full model, so calls are serialized.
type ExecEngine struct {
	cmd []string
	mu  sync.Mutex
}

var _ Engine = (*ExecEngine)(nil)

func NewExecEngine(command string) (*ExecEngine, error) {
	parser := shellwords.NewParser()

	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse tts command: %w", err)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("tts command empty")
	}

	return &ExecEngine{cmd: args}, nil
}

func (e *ExecEngine) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "marshal tts request")
	}

	base := e.cmd[0]
	args := append([]string{}, e.cmd[1:]...)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, base, args...)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tts command failed: %w - output: %s", err, stderr.String())
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("tts command produced no audio")
	}

	return stdout.Bytes(), nil
}

func (e *ExecEngine) Health(ctx context.Context) error {
	if _, err := exec.LookPath(e.cmd[0]); err != nil {
		return fmt.Errorf("tts command not found: %w", err)
	}

	return nil
}
