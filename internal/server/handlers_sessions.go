package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mvarela/cv-alchemist/internal/extraction"
	"github.com/mvarela/cv-alchemist/internal/form"
	"github.com/mvarela/cv-alchemist/internal/schemas"
	"github.com/mvarela/cv-alchemist/internal/session"
)

// handleCreateSession starts a new workflow session.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	s.jsonResponse(w, http.StatusCreated, sess)
}

// handleGetSession returns the full artifact state of a session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

// handleDeleteSession discards a session and its artifacts.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.store.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleCVUpload extracts the base CV from one or more uploaded PDFs.
func (s *Server) handleCVUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	text, meta, ok := s.extractUpload(w, r)
	if !ok {
		return
	}

	if err := s.store.SetBaseCV(sess.ID, text); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, meta)
}

// handleStudiesUpload extracts supplementary studies documents.
func (s *Server) handleStudiesUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if sess.BaseCVText == "" {
		s.errorResponse(w, http.StatusConflict, "Primero subí o completá tu CV base.")
		return
	}

	text, meta, ok := s.extractUpload(w, r)
	if !ok {
		return
	}

	if err := s.store.SetStudies(sess.ID, text); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, meta)
}

// handleStudiesSkip marks the studies step as completed without content.
func (s *Server) handleStudiesSkip(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if sess.BaseCVText == "" {
		s.errorResponse(w, http.StatusConflict, "Primero subí o completá tu CV base.")
		return
	}

	if err := s.store.SkipStudies(sess.ID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"studies": "skipped"})
}

// handleCVForm builds the base CV from a structured form payload instead of
// an upload.
func (s *Server) handleCVForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateCVForm(body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "invalid CV form payload",
				"fields": validationErr.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	var payload form.CVForm
	if err := json.Unmarshal(body, &payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if errs := payload.Validate(); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":  "invalid CV form fields",
			"fields": messages,
		})
		return
	}

	if err := s.store.SetBaseCV(sess.ID, payload.BuildCVText()); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"base_cv": "created"})
}

// uploadResult reports what was extracted, per file.
type uploadResult struct {
	Files      []fileResult `json:"files"`
	TextLength int          `json:"text_length"`
}

type fileResult struct {
	Name     string              `json:"name"`
	Warning  string              `json:"warning,omitempty"`
	Metadata extraction.Metadata `json:"metadata"`
}

// extractUpload validates and extracts every PDF in the multipart request.
// On failure it writes the error response itself and returns ok=false.
func (s *Server) extractUpload(w http.ResponseWriter, r *http.Request) (string, uploadResult, bool) {
	maxBytes := int64(s.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart request")
		return "", uploadResult{}, false
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no files uploaded; use the 'files' field")
		return "", uploadResult{}, false
	}

	var files []extraction.File
	var result uploadResult
	for _, header := range fileHeaders {
		f, err := header.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
			return "", uploadResult{}, false
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
			return "", uploadResult{}, false
		}

		validation := extraction.Validate(data, s.cfg.MaxUploadMB)
		if !validation.Valid {
			s.errorResponse(w, http.StatusUnprocessableEntity, validation.Message)
			return "", uploadResult{}, false
		}

		files = append(files, extraction.File{Name: header.Filename, Data: data})
		result.Files = append(result.Files, fileResult{
			Name:     header.Filename,
			Warning:  validation.Warning,
			Metadata: validation.Metadata,
		})
	}

	var text string
	var err error
	if len(files) == 1 {
		text, err = extraction.Extract(files[0].Data)
	} else {
		text, err = extraction.ExtractMultiple(files)
	}
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return "", uploadResult{}, false
	}

	text = extraction.CleanText(text)
	result.TextLength = len(text)
	return text, result, true
}

// session resolves the path session ID, writing a 404 when it is unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return session.Session{}, false
	}
	return sess, true
}
