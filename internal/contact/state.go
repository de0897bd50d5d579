package contact

import "fmt"

// Phase identifies where a form interaction sits in the submission
// lifecycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseError      Phase = "error"
)

// State tracks one form interaction through the submission lifecycle.
// The zero value is idle. Invariants: submitting and success never hold
// together, and no error message is carried while a submission is in
// flight.
type State struct {
	phase        Phase
	errorMessage string
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase {
	if s == nil || s.phase == "" {
		return PhaseIdle
	}
	return s.phase
}

// IsSubmitting reports whether a submission is in flight.
func (s *State) IsSubmitting() bool {
	return s.Phase() == PhaseSubmitting
}

// IsSuccess reports whether the last submission was delivered.
func (s *State) IsSuccess() bool {
	return s.Phase() == PhaseSuccess
}

// ErrorMessage returns the user-facing message for the error phase, or
// "" in every other phase.
func (s *State) ErrorMessage() string {
	if s == nil || s.phase != PhaseError {
		return ""
	}
	return s.errorMessage
}

// Begin moves into submitting. Allowed from idle and error; any prior
// error message is cleared. Callers must validate the form first.
func (s *State) Begin() error {
	switch s.Phase() {
	case PhaseIdle, PhaseError:
		s.phase = PhaseSubmitting
		s.errorMessage = ""
		return nil
	default:
		return fmt.Errorf("cannot begin submission from %s", s.Phase())
	}
}

// Succeed resolves an in-flight submission as delivered.
func (s *State) Succeed() error {
	if s.Phase() != PhaseSubmitting {
		return fmt.Errorf("cannot succeed from %s", s.Phase())
	}
	s.phase = PhaseSuccess
	s.errorMessage = ""
	return nil
}

// Fail resolves an in-flight submission with a user-facing message.
func (s *State) Fail(message string) error {
	if s.Phase() != PhaseSubmitting {
		return fmt.Errorf("cannot fail from %s", s.Phase())
	}
	s.phase = PhaseError
	s.errorMessage = message
	return nil
}

// Reset returns to idle after a delivered submission, for the
// "send another message" action.
func (s *State) Reset() error {
	if s.Phase() != PhaseSuccess {
		return fmt.Errorf("cannot reset from %s", s.Phase())
	}
	s.phase = PhaseIdle
	s.errorMessage = ""
	return nil
}

// ClearError drops a displayed error without re-validating, mirroring the
// optimistic clear on the next field edit. No-op outside the error phase.
func (s *State) ClearError() {
	if s == nil || s.phase != PhaseError {
		return
	}
	s.phase = PhaseIdle
	s.errorMessage = ""
}
