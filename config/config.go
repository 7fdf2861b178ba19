package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config -.
	Config struct {
		App    `yaml:"app"`
		Server `yaml:"server"`
		Log    `yaml:"logger"`
		TTS    `yaml:"tts"`
		Model  `yaml:"model"`
		S3     `yaml:"s3"`
		OTEL   `yaml:"otel"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name"    env:"APP_NAME"`
		Version string `env-required:"true" yaml:"version" env:"APP_VERSION"`
	}

	// Server -.
	Server struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// TTS holds the synthesis engine settings.
	TTS struct {
		Engine           string `env-required:"true" yaml:"engine"  env:"TTS_ENGINE"` // exec | http | mock
		Command          string `yaml:"command" env:"TTS_COMMAND"`
		URL              string `yaml:"url"     env:"TTS_URL"`
		TimeoutSeconds   int    `env-default:"120" yaml:"timeout_seconds"    env:"TTS_TIMEOUT_SECONDS"`
		SampleRate       int    `env-default:"22050" yaml:"sample_rate"      env:"TTS_SAMPLE_RATE"`
		MaxTextChars     int    `env-default:"2000" yaml:"max_text_chars"    env:"TTS_MAX_TEXT_CHARS"`
		MaxUploadBytes   int64  `env-default:"15728640" yaml:"max_upload_bytes" env:"TTS_MAX_UPLOAD_BYTES"`
		MinSampleSeconds int    `env-default:"5" yaml:"min_sample_seconds"   env:"TTS_MIN_SAMPLE_SECONDS"`
		MaxSampleSeconds int    `env-default:"30" yaml:"max_sample_seconds"  env:"TTS_MAX_SAMPLE_SECONDS"`
		ResultTTLSeconds int    `env-default:"600" yaml:"result_ttl_seconds" env:"TTS_RESULT_TTL_SECONDS"`
	}

	// Model holds settings for the model-weights fetcher.
	Model struct {
		Name        string `env-required:"true" yaml:"name" env:"MODEL_NAME"`
		Dir         string `env-required:"true" yaml:"dir"  env:"MODEL_DIR"`
		Bucket      string `yaml:"bucket"       env:"MODEL_BUCKET"`
		ArchiveKey  string `yaml:"archive_key"  env:"MODEL_ARCHIVE_KEY"`
		ManifestKey string `yaml:"manifest_key" env:"MODEL_MANIFEST_KEY"`
	}

	// S3 -.
	S3 struct {
		Endpoint  string `yaml:"endpoint"   env:"S3_ENDPOINT"`
		Region    string `env-default:"us-east-1" yaml:"region" env:"S3_REGION"`
		AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	}

	OTEL struct {
		JaegerEndpoint string `env-required:"true" yaml:"jaeger_endpoint" env:"JAEGER_ENDPOINT"`
		PrometheusPort string `env-required:"true" yaml:"prometheus_port" env:"PROMETHEUS_PORT"`
	}
)

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadConfig("./config/config.yml", cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
