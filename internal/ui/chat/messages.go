package chat

import (
	"github.com/rpandey/mentora/internal/engine"
	"github.com/rpandey/mentora/internal/session"
)

// sessionStartedMsg is sent when the session has been created and the
// opening tutor message generated.
type sessionStartedMsg struct {
	State *session.State
	First string
	Err   error
}

// turnDoneMsg is sent when a submitted turn finished processing.
type turnDoneMsg struct {
	Result *engine.TurnResult
	Err    error
}

// lifecycleDoneMsg is sent when a pause/resume/end action completed.
type lifecycleDoneMsg struct {
	Action  string
	Summary *session.Summary
	Err     error
}
