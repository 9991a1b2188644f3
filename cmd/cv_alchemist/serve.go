package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvarela/cv-alchemist/internal/config"
	"github.com/mvarela/cv-alchemist/internal/llm"
	"github.com/mvarela/cv-alchemist/internal/render"
	"github.com/mvarela/cv-alchemist/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the CV workflow: uploads, generation, ATS analysis and PDF export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if !cfg.HasProviderKey() {
		logger.Warn("no provider API key configured; generation calls will fail",
			"hint", "set OPENAI_API_KEY or GEMINI_API_KEY")
	}

	generator := llm.NewGenerator(cfg.LLM(), logger)
	defer func() {
		if err := generator.Close(); err != nil {
			logger.Warn("closing generator", "error", err)
		}
	}()

	renderer := &render.Renderer{
		ChromePath: cfg.ChromePath,
		Timeout:    2 * time.Minute,
	}

	srv := server.New(cfg, generator, renderer, logger)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
