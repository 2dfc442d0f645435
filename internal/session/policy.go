package session

// Completion/extension policy.
//
// A session completes when its mode's completion condition holds: all
// plan steps done (teach_me), natural closure signaled by the tutor
// (clarify_doubts), or an explicit end-exam action (exam). Before
// finalizing, outstanding misconceptions may earn a bounded extension.
// An explicit stop from the student always wins and is never reversed.

// MaxExtensionTurns caps extension turns, measured from the turn at
// which all plan steps were first completed.
const MaxExtensionTurns = 6

// CompletionSignal carries the per-turn inputs the policy needs from
// the generated tutor output.
type CompletionSignal struct {
	// TutorSignaledComplete is the generator's session_complete flag
	// (natural closure in clarify_doubts, final step wrapped in teach_me).
	TutorSignaledComplete bool

	// ExplicitStop is true when the student's message was classified as
	// a request to end the session.
	ExplicitStop bool

	// EndExam is true for the explicit end-exam action.
	EndExam bool
}

// Decision is the policy's verdict for this turn.
type Decision struct {
	Complete bool
	Extend   bool
}

// EvaluateCompletion decides whether the session ends, extends, or
// continues after this turn. It mutates only ExtensionStart bookkeeping
// on the state; the orchestrator applies the decision.
func EvaluateCompletion(s *State, sig CompletionSignal) Decision {
	// Absolute rule: an explicit stop ends the session now. No
	// extension offer, no further material.
	if sig.ExplicitStop || s.StopRequested {
		return Decision{Complete: true}
	}

	if sig.EndExam && s.Mode == ModeExam {
		return Decision{Complete: true}
	}

	done := false
	switch s.Mode {
	case ModeTeachMe:
		done = s.Plan.AllCompleted()
	case ModeClarifyDoubts:
		done = sig.TutorSignaledComplete
	case ModeExam:
		// Exams end only on the explicit action handled above.
		return Decision{}
	}

	if !done {
		return Decision{}
	}

	// Record when completion was first reached so the extension cap is
	// measured from that point.
	if s.ExtensionStart == 0 {
		s.ExtensionStart = s.TurnCount
	}

	if s.AllowExtension && len(s.Misconceptions) > 0 && s.TurnCount-s.ExtensionStart < MaxExtensionTurns {
		return Decision{Extend: true}
	}

	return Decision{Complete: true}
}

// InExtension reports whether the session is past first completion but
// still open, i.e. running on extension turns.
func (s *State) InExtension() bool {
	return s.ExtensionStart > 0 && !s.Complete
}

// ExtensionExhausted reports whether the extension-turn cap has been
// reached.
func (s *State) ExtensionExhausted() bool {
	return s.ExtensionStart > 0 && s.TurnCount-s.ExtensionStart >= MaxExtensionTurns
}
