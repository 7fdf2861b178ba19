package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_cloning/config"
)

const testYAML = `app:
  name: "voice-cloning"
  version: "1.0.0"
server:
  port: "8080"
logger:
  log_level: "debug"
tts:
  engine: "mock"
model:
  name: "tts_models/multilingual/multi-dataset/your_tts"
  dir: "./models/your_tts"
otel:
  jaeger_endpoint: "http://localhost:14268/api/traces"
  prometheus_port: "9090"
`

func TestReadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))

	cfg := &config.Config{}
	require.NoError(t, cleanenv.ReadConfig(path, cfg))

	assert.Equal(t, "voice-cloning", cfg.App.Name)
	assert.Equal(t, "mock", cfg.TTS.Engine)

	// Unset fields fall back to env-default tags.
	assert.Equal(t, 22050, cfg.TTS.SampleRate)
	assert.Equal(t, 2000, cfg.TTS.MaxTextChars)
	assert.Equal(t, int64(15728640), cfg.TTS.MaxUploadBytes)
	assert.Equal(t, 5, cfg.TTS.MinSampleSeconds)
	assert.Equal(t, 30, cfg.TTS.MaxSampleSeconds)
	assert.Equal(t, 600, cfg.TTS.ResultTTLSeconds)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestReadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))

	t.Setenv("TTS_ENGINE", "http")
	t.Setenv("TTS_URL", "http://tts:5002")
	t.Setenv("TTS_RESULT_TTL_SECONDS", "60")

	cfg := &config.Config{}
	require.NoError(t, cleanenv.ReadConfig(path, cfg))

	assert.Equal(t, "http", cfg.TTS.Engine)
	assert.Equal(t, "http://tts:5002", cfg.TTS.URL)
	assert.Equal(t, 60, cfg.TTS.ResultTTLSeconds)
}

func TestReadConfigMissingRequiredField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: \"voice-cloning\"\n"), 0o644))

	err := cleanenv.ReadConfig(path, &config.Config{})
	require.Error(t, err)
}
