// Package server provides the HTTP REST API for the CV workflow: upload or
// form-build a base CV, generate the master and derived artifacts, analyze
// ATS compatibility and export styled PDFs.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvarela/cv-alchemist/internal/config"
	"github.com/mvarela/cv-alchemist/internal/llm"
	"github.com/mvarela/cv-alchemist/internal/session"
	"github.com/mvarela/cv-alchemist/internal/templates"
)

// TextGenerator is the generation dependency; satisfied by *llm.Generator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts llm.Options) llm.Output
}

// PDFRenderer is the export dependency; satisfied by *render.Renderer.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, content string, tpl templates.CVTemplate, title string) ([]byte, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *session.Store
	generator  TextGenerator
	renderer   PDFRenderer
	cfg        config.Config
	logger     *slog.Logger
}

// New creates a new server instance.
func New(cfg config.Config, generator TextGenerator, renderer PDFRenderer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		store:     session.NewStore(),
		generator: generator,
		renderer:  renderer,
		cfg:       cfg,
		logger:    logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation and browser export are slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	mux.HandleFunc("POST /sessions/{id}/cv/upload", s.handleCVUpload)
	mux.HandleFunc("POST /sessions/{id}/cv/form", s.handleCVForm)
	mux.HandleFunc("POST /sessions/{id}/studies/upload", s.handleStudiesUpload)
	mux.HandleFunc("POST /sessions/{id}/studies/skip", s.handleStudiesSkip)

	mux.HandleFunc("POST /sessions/{id}/master", s.handleGenerateMaster)
	mux.HandleFunc("POST /sessions/{id}/linkedin", s.handleGenerateLinkedIn)
	mux.HandleFunc("POST /sessions/{id}/targeted", s.handleGenerateTargeted)
	mux.HandleFunc("POST /sessions/{id}/ats", s.handleATSAnalysis)
	mux.HandleFunc("POST /sessions/{id}/export", s.handleExport)

	mux.HandleFunc("POST /job/structure", s.handleJobStructure)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration", time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListTemplates returns the visual template catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templates.All()})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
