package tui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Status is the shared status line. Menu handlers set it; the model
// renders it with a relative timestamp.
type Status struct {
	msg string
	at  time.Time
}

// Set replaces the status message and stamps it with the current time.
func (s *Status) Set(msg string) {
	s.msg = msg
	s.at = time.Now()
}

// View renders the status line, empty when nothing has happened yet.
func (s *Status) View() string {
	if s.msg == "" {
		return ""
	}
	return s.msg + " (" + humanize.Time(s.at) + ")"
}
