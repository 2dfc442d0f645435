package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition marks a lifecycle action that does not apply to
// the session's current state, e.g. resuming a session that is not
// paused or ending one that is already complete.
var ErrInvalidTransition = errors.New("invalid state transition")

func invalidTransition(action, state string) error {
	return fmt.Errorf("%w: cannot %s a %s session", ErrInvalidTransition, action, state)
}
