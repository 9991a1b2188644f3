package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mvarela/cv-alchemist/internal/ats"
	"github.com/mvarela/cv-alchemist/internal/llm"
	"github.com/mvarela/cv-alchemist/internal/prompts"
	"github.com/mvarela/cv-alchemist/internal/session"
	"github.com/mvarela/cv-alchemist/internal/templates"
)

// generateRequest carries optional per-call provider and model overrides.
type generateRequest struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// targetedRequest adds the job description for a targeted CV.
type targetedRequest struct {
	generateRequest
	JobDescription string `json:"job_description"`
}

// generateResponse is the payload for every successful generation call.
type generateResponse struct {
	Content  string `json:"content"`
	Provider string `json:"provider"`
}

// handleGenerateMaster produces the master CV from the base CV and the
// supplementary studies.
func (s *Server) handleGenerateMaster(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if sess.BaseCVText == "" {
		s.errorResponse(w, http.StatusConflict, "Primero subí o completá tu CV base.")
		return
	}
	if !sess.StudiesProvided() {
		s.errorResponse(w, http.StatusConflict,
			"Completá el paso de estudios adicionales (subilos u omitilos).")
		return
	}

	req := decodeOptions(r)
	prompt := prompts.BuildMaster(sess.BaseCVText, *sess.Studies)
	out := s.generator.Generate(r.Context(), prompt, options(req))
	if !s.acceptOutput(w, out) {
		return
	}

	if err := s.store.SetMasterCV(sess.ID, out.Text); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, generateResponse{Content: out.Text, Provider: string(out.Provider)})
}

// handleGenerateLinkedIn produces the LinkedIn profile content from the
// master CV.
func (s *Server) handleGenerateLinkedIn(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if sess.MasterCV == "" {
		s.errorResponse(w, http.StatusConflict, "Primero generá tu CV maestro.")
		return
	}

	req := decodeOptions(r)
	out := s.generator.Generate(r.Context(), prompts.BuildLinkedIn(sess.MasterCV), options(req))
	if !s.acceptOutput(w, out) {
		return
	}

	if err := s.store.SetLinkedInProfile(sess.ID, out.Text); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, generateResponse{Content: out.Text, Provider: string(out.Provider)})
}

// handleGenerateTargeted produces a CV targeted at a specific job
// description.
func (s *Server) handleGenerateTargeted(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if sess.MasterCV == "" {
		s.errorResponse(w, http.StatusConflict, "Primero generá tu CV maestro.")
		return
	}

	var req targetedRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		jobDescription = sess.JobDescriptionText
	}
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "Falta la descripción del puesto (job_description).")
		return
	}

	prompt := prompts.BuildTargeted(sess.MasterCV, jobDescription)
	out := s.generator.Generate(r.Context(), prompt, options(req.generateRequest))
	if !s.acceptOutput(w, out) {
		return
	}

	if err := s.store.SetJobDescription(sess.ID, jobDescription); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err := s.store.SetTargetedCV(sess.ID, out.Text); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, generateResponse{Content: out.Text, Provider: string(out.Provider)})
}

// handleATSAnalysis scores the targeted CV against the stored job
// description and returns the parsed report.
func (s *Server) handleATSAnalysis(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if sess.TargetedCV == "" {
		s.errorResponse(w, http.StatusConflict, "Primero generá tu CV adaptado al puesto.")
		return
	}

	req := decodeOptions(r)
	prompt := prompts.BuildATSAnalysis(sess.TargetedCV, sess.JobDescriptionText)
	out := s.generator.Generate(r.Context(), prompt, options(req))
	if out.Failed() {
		s.errorResponse(w, http.StatusBadGateway, out.Text)
		return
	}

	analysis := ats.Parse(out.Text)
	if err := s.store.SetATSAnalysis(sess.ID, analysis); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis":    analysis,
		"score_color": ats.ScoreColor(analysis.Score),
		"provider":    string(out.Provider),
	})
}

// exportRequest selects the artifact and the visual template for a PDF.
type exportRequest struct {
	Artifact string `json:"artifact"`
	Template string `json:"template"`
	Title    string `json:"title"`
}

// handleExport renders a session artifact to PDF with the chosen template.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	content, err := artifactText(sess, req.Artifact)
	if err != nil {
		s.errorResponse(w, http.StatusConflict, err.Error())
		return
	}

	title := req.Title
	if title == "" {
		title = "CV"
	}

	pdf, err := s.renderer.RenderPDF(r.Context(), content, templates.Get(req.Template), title)
	if err != nil {
		s.logger.Error("PDF export failed", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "No se pudo generar el PDF. Intentá nuevamente.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", title+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// artifactText picks the requested artifact from the session.
func artifactText(sess session.Session, artifact string) (string, error) {
	switch artifact {
	case "master", "":
		if sess.MasterCV == "" {
			return "", fmt.Errorf("todavía no hay un CV maestro generado")
		}
		return sess.MasterCV, nil
	case "targeted":
		if sess.TargetedCV == "" {
			return "", fmt.Errorf("todavía no hay un CV adaptado generado")
		}
		return sess.TargetedCV, nil
	case "linkedin":
		if sess.LinkedInProfile == "" {
			return "", fmt.Errorf("todavía no hay contenido de LinkedIn generado")
		}
		return sess.LinkedInProfile, nil
	default:
		return "", fmt.Errorf("artefacto desconocido: %s", artifact)
	}
}

// acceptOutput maps generation outcomes onto responses. Returns true only
// for usable generated content.
func (s *Server) acceptOutput(w http.ResponseWriter, out llm.Output) bool {
	switch out.Kind {
	case llm.KindFailed:
		s.errorResponse(w, http.StatusBadGateway, out.Text)
		return false
	case llm.KindInsufficientData:
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "insufficient_data",
			"message": out.Text,
		})
		return false
	default:
		return true
	}
}

// decodeOptions reads optional provider/model overrides; an empty or
// malformed body means defaults.
func decodeOptions(r *http.Request) generateRequest {
	var req generateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	return req
}

func options(req generateRequest) llm.Options {
	return llm.Options{Provider: llm.Provider(req.Provider), Model: req.Model}
}
