// Package server wires the voice-cloning web UI together and owns its
// lifecycle: engine selection, routing, CORS, telemetry and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"voice_cloning/config"
	v1 "voice_cloning/internal/controller/http/v1"
	"voice_cloning/internal/synthesis"
	ttrace "voice_cloning/internal/telemetry/trace"
	"voice_cloning/pkg/audio"
	"voice_cloning/pkg/httpserver"
	"voice_cloning/pkg/logger"
	"voice_cloning/pkg/synth"
)

var name = "voice-cloning-server"

const shutdownTimeout = 30 * time.Second

// NewServer ...
func NewServer(cfg *config.Config) *Server {
	srv := &Server{}

	srv.InitGlobalProvider(name, cfg.JaegerEndpoint)

	return srv
}

type Server struct {
	traceProviderCloseFn []ttrace.CloseFunc
}

// Run ...
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	l := logger.New(cfg.Log.Level)
	l.Info("Starting server...")

	engine, err := buildEngine(cfg)
	if err != nil {
		l.Fatal(err)
	}

	converter := audio.NewConverter(cfg.TTS.SampleRate)
	prober := audio.NewWAVProber()
	usecase := synthesis.NewUsecase(cfg, engine, converter, prober, l)

	handler := gin.New()
	v1.NewRouter(handler, l, usecase, cfg.TTS.MaxUploadBytes)
	httpServer := httpserver.New(s.cors().Handler(handler), httpserver.Port(cfg.Server.Port))

	l.Info("server serving on port %s", cfg.Server.Port)

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-interrupt:
		l.Info("app - Run - signal: " + sig.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	ctxShutDown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown
	if shutdownErr := httpServer.Shutdown(); shutdownErr != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", shutdownErr))
	}

	for _, closeFn := range s.traceProviderCloseFn {
		if closeErr := closeFn(ctxShutDown); closeErr != nil {
			l.Error(fmt.Errorf("app - Run - trace provider close: %w", closeErr))
		}
	}

	l.Info("server exited properly")

	return err
}

// buildEngine selects the synthesis engine from configuration. The engine
// stays behind the synth.Engine interface so it can be swapped without
// touching UI code.
func buildEngine(cfg *config.Config) (synth.Engine, error) {
	switch cfg.TTS.Engine {
	case "exec":
		return synth.NewExecEngine(cfg.TTS.Command)
	case "http":
		return synth.NewHTTPEngine(cfg.TTS.URL, time.Duration(cfg.TTS.TimeoutSeconds)*time.Second), nil
	case "mock":
		return synth.NewMockEngine(), nil
	default:
		return nil, fmt.Errorf("unknown tts engine %q", cfg.TTS.Engine)
	}
}

func (s *Server) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		MaxAge:           60, // 1 minute
		AllowCredentials: true,
	})
}
