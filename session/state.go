package session

import (
	"fmt"

	jp "github.com/go-mclib/sessioncore/protocol"
)

// Phase mirrors jp.State but is the name this package's callers see; it
// exists so session code never has to say "jp.StatePlay" in prose while
// still sharing the exact same underlying values as the wire layer.
type Phase = jp.State

const (
	PhaseHandshake     = jp.StateHandshake
	PhaseStatus        = jp.StateStatus
	PhaseLogin         = jp.StateLogin
	PhaseConfiguration = jp.StateConfiguration
	PhasePlay          = jp.StatePlay
)

// StateMachine owns the connection's current phase and enforces that
// writes/handler dispatch stay within the packet table for that phase
// (spec §4.2: "Writing a packet reserved for a different phase is an
// internal error").
//
// Transitions:
//
//	Handshake -> Status | Login
//	Status    -> (terminal on close)
//	Login     -> Configuration
//	Configuration -> Play (on the Login (play) packet after FinishConfiguration)
//	Play      -> Configuration (on StartConfiguration) -> Play
type StateMachine struct {
	phase Phase
}

func NewStateMachine() *StateMachine {
	return &StateMachine{phase: PhaseHandshake}
}

func (s *StateMachine) Phase() Phase { return s.phase }

// Transition moves the state machine to a new phase. It does not validate
// that the transition is one of the legal edges above — callers invoke it
// only from the specific handlers that are permitted to trigger a phase
// change (Handshake's next-state field, LoginFinished, Login (play),
// StartConfiguration), so the legality is enforced by which code paths call
// Transition, not by this method.
func (s *StateMachine) Transition(next Phase) {
	s.phase = next
}

// RequirePhase returns ErrWrongPhase wrapped with the offending/expected
// phases if the state machine isn't currently in want. The play dispatcher
// does not call it: Dispatch runs handlers whatever the current phase is.
func (s *StateMachine) RequirePhase(want Phase) error {
	if s.phase != want {
		return fmt.Errorf("%w: have %d, want %d", ErrWrongPhase, s.phase, want)
	}
	return nil
}
