// Package session holds the per-session artifacts produced along the CV
// workflow, in memory only. Artifacts form a dependency chain: the base CV
// feeds the master CV, which feeds the LinkedIn profile and the targeted
// CV, and the targeted CV feeds the ATS analysis. Updating an artifact
// invalidates everything downstream of it.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvarela/cv-alchemist/internal/ats"
)

// NotFoundError reports an unknown session ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// Session is the artifact set of one user workflow.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// BaseCVText is the extracted or form-assembled source CV.
	BaseCVText string `json:"base_cv_text,omitempty"`

	// Studies is nil until the user uploads supplementary studies or
	// explicitly skips them; an empty non-nil value means "skipped".
	Studies *string `json:"studies,omitempty"`

	MasterCV           string        `json:"master_cv,omitempty"`
	JobDescriptionText string        `json:"job_description,omitempty"`
	TargetedCV         string        `json:"targeted_cv,omitempty"`
	LinkedInProfile    string        `json:"linkedin_profile,omitempty"`
	ATSAnalysis        *ats.Analysis `json:"ats_analysis,omitempty"`
}

// StudiesProvided reports whether the studies step was completed, either
// with content or by skipping.
func (s *Session) StudiesProvided() bool {
	return s.Studies != nil
}

// Store is an in-memory session registry safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new empty session and returns a copy of it.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, &NotFoundError{ID: id}
	}
	return *sess, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SetBaseCV stores the source CV text and invalidates every downstream
// artifact, the studies step included.
func (s *Store) SetBaseCV(id, text string) error {
	return s.update(id, func(sess *Session) {
		sess.BaseCVText = text
		sess.Studies = nil
		invalidateFromMaster(sess)
	})
}

// SetStudies records the supplementary studies text and invalidates the
// master CV and everything after it. An empty string is a valid value and
// means the step was completed with no additions.
func (s *Store) SetStudies(id, text string) error {
	return s.update(id, func(sess *Session) {
		sess.Studies = &text
		invalidateFromMaster(sess)
	})
}

// SkipStudies marks the studies step as completed without content.
func (s *Store) SkipStudies(id string) error {
	return s.SetStudies(id, "")
}

// SetMasterCV stores the generated master CV and invalidates the artifacts
// derived from it.
func (s *Store) SetMasterCV(id, text string) error {
	return s.update(id, func(sess *Session) {
		sess.MasterCV = text
		invalidateDerived(sess)
	})
}

// SetJobDescription stores the structured job description and invalidates
// the targeted CV and its analysis.
func (s *Store) SetJobDescription(id, text string) error {
	return s.update(id, func(sess *Session) {
		sess.JobDescriptionText = text
		sess.TargetedCV = ""
		sess.ATSAnalysis = nil
	})
}

// SetTargetedCV stores the targeted CV and invalidates its ATS analysis.
func (s *Store) SetTargetedCV(id, text string) error {
	return s.update(id, func(sess *Session) {
		sess.TargetedCV = text
		sess.ATSAnalysis = nil
	})
}

// SetLinkedInProfile stores the generated LinkedIn content.
func (s *Store) SetLinkedInProfile(id, text string) error {
	return s.update(id, func(sess *Session) {
		sess.LinkedInProfile = text
	})
}

// SetATSAnalysis stores the parsed analysis of the targeted CV.
func (s *Store) SetATSAnalysis(id string, analysis *ats.Analysis) error {
	return s.update(id, func(sess *Session) {
		sess.ATSAnalysis = analysis
	})
}

func (s *Store) update(id string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
	return nil
}

func invalidateFromMaster(sess *Session) {
	sess.MasterCV = ""
	invalidateDerived(sess)
}

func invalidateDerived(sess *Session) {
	sess.LinkedInProfile = ""
	sess.TargetedCV = ""
	sess.ATSAnalysis = nil
}
