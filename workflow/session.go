package workflow

import (
	"sync"

	"github.com/Ojas37/Legal-AI-Analyzer/service"
)

// Session is the display state of one workflow run: a progress percentage
// and a single status line. The two fields always change together under one
// lock, so observers never see a half-reset state.
type Session struct {
	mu       sync.Mutex
	progress int
	message  string
	notify   service.ProgressFunc
}

func NewSession(notify service.ProgressFunc) *Session {
	return &Session{notify: notify}
}

// Update stores a reported progress value verbatim. An empty message keeps
// the current status line; terminal completion reports progress only.
func (s *Session) Update(progress int, message string) {
	s.mu.Lock()
	s.progress = progress
	if message != "" {
		s.message = message
	}
	p, m := s.progress, s.message
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(p, m)
	}
}

// Reset clears both fields as one step. Called at the start of every
// session and on every terminal failure.
func (s *Session) Reset() {
	s.mu.Lock()
	s.progress = 0
	s.message = ""
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(0, "")
	}
}

// State returns the current progress and status line.
func (s *Session) State() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress, s.message
}
