package flow

import "fmt"

// Direction records the last transition for slide animation hints. It is
// display-only and carries no navigation semantics.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionBack    Direction = "back"
)

// Snapshot is a value copy of the navigable session state. History entries
// are snapshots, so Back restores the exact prior state rather than
// recomputing it.
type Snapshot struct {
	CurrentNodeID string
	Answers       Answers
	Flags         Flags
}

// Patch is an optional set of answer and flag merges applied during an
// Advance. Merges are shallow: later keys win, unspecified keys are left
// untouched.
type Patch struct {
	Answers Answers
	Flags   Flags
}

// Session is the mutable per-interaction state machine over a Definition.
// It is single-user and synchronous: every operation completes atomically
// in memory before returning.
type Session struct {
	def       *Definition
	current   string
	answers   Answers
	flags     Flags
	history   []Snapshot
	direction Direction
}

// NewSession creates a session positioned at the definition's start node
// with empty answers, flags, and history.
func NewSession(def *Definition) *Session {
	return &Session{
		def:       def,
		current:   def.Start,
		answers:   Answers{},
		flags:     Flags{},
		direction: DirectionForward,
	}
}

// Definition returns the flow this session walks.
func (s *Session) Definition() *Definition { return s.def }

// CurrentNodeID returns the id of the node the session is positioned at.
func (s *Session) CurrentNodeID() string { return s.current }

// CurrentNode resolves the current node. A false return indicates a
// definition fault (dangling reference), which Parse-time validation rules
// out.
func (s *Session) CurrentNode() (Node, bool) {
	return s.def.Node(s.current)
}

// Answer returns the recorded answer for a question id.
func (s *Session) Answer(questionID string) (string, bool) {
	v, ok := s.answers[questionID]
	return v, ok
}

// Flag returns whether the named flag is set.
func (s *Session) Flag(name string) bool { return s.flags[name] }

// Answers returns a value copy of the accumulated answer map.
func (s *Session) Answers() Answers { return s.answers.clone() }

// Flags returns a value copy of the accumulated flag map.
func (s *Session) Flags() Flags { return s.flags.clone() }

// Direction returns the last transition direction.
func (s *Session) Direction() Direction { return s.direction }

// CanGoBack reports whether any forward navigation has occurred since the
// last restart. Presentation layers hide back controls when this is false.
func (s *Session) CanGoBack() bool { return len(s.history) > 0 }

// HistoryDepth returns the number of snapshots on the history stack.
func (s *Session) HistoryDepth() int { return len(s.history) }

// Snapshot returns a value copy of the current navigable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		CurrentNodeID: s.current,
		Answers:       s.answers.clone(),
		Flags:         s.flags.clone(),
	}
}

// SelectAnswer records answers[questionID] = value without navigating and
// without touching history. Re-selecting overwrites the prior value
// (last-write-wins); downstream answers recorded via an earlier value are
// deliberately left in place. Back restores consistency via snapshots.
func (s *Session) SelectAnswer(questionID, value string) {
	s.answers[questionID] = value
}

// Advance pushes the pre-mutation state onto history, applies the optional
// patch, and moves to next. It rejects ids not present in the definition,
// leaving all state untouched: an invalid target is a caller bug, never a
// reason to corrupt the current position.
func (s *Session) Advance(next string, patch *Patch) error {
	if _, ok := s.def.Node(next); !ok {
		return fmt.Errorf("advance to unknown node %q", next)
	}

	s.history = append(s.history, s.Snapshot())
	s.direction = DirectionForward

	if patch != nil {
		for k, v := range patch.Answers {
			s.answers[k] = v
		}
		for k, v := range patch.Flags {
			s.flags[k] = v
		}
	}

	s.current = next
	return nil
}

// Back pops the most recent snapshot and replaces the entire state with it,
// discarding any not-yet-confirmed selection on the current node. With an
// empty history it is a no-op and returns false.
func (s *Session) Back() bool {
	if len(s.history) == 0 {
		return false
	}
	top := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.current = top.CurrentNodeID
	s.answers = top.Answers
	s.flags = top.Flags
	s.direction = DirectionBack
	return true
}

// Restart clears history and resets the session to the start node with
// empty answers and flags.
func (s *Session) Restart() {
	s.history = nil
	s.current = s.def.Start
	s.answers = Answers{}
	s.flags = Flags{}
	s.direction = DirectionForward
}
