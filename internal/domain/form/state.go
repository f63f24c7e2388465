package form

// Update is a partial form-state update produced by the cascade engine
// or the derived-field calculator, applied atomically by the caller.
type Update map[string]string

// State holds the live values of one open form. It is owned by a single
// form session, mutated only from that session's event handlers, and
// discarded when the form closes or submits successfully.
type State struct {
	// IsNew is true while the form edits a record that has never been
	// saved; the primary entity picker may overwrite the full cascade
	// target set in that case.
	IsNew  bool
	values map[string]string
}

// NewState creates an empty form state
func NewState(isNew bool) *State {
	return &State{
		IsNew:  isNew,
		values: make(map[string]string),
	}
}

// NewStateFromValues pre-populates a state, e.g. when a form opens over
// an existing record.
func NewStateFromValues(isNew bool, values map[string]string) *State {
	s := NewState(isNew)
	for name, value := range values {
		s.values[name] = value
	}
	return s
}

// Value returns the current value of a field, empty if unset
func (s *State) Value(name string) string {
	return s.values[name]
}

// Set stores a single field value
func (s *State) Set(name, value string) {
	s.values[name] = value
}

// Apply writes a partial update in one step
func (s *State) Apply(update Update) {
	for name, value := range update {
		s.values[name] = value
	}
}

// Snapshot copies the current values. Submission flows snapshot the
// state at validation time and persist exactly that copy, so edits made
// while a duplicate-conflict dialog is open never leak into the save.
func (s *State) Snapshot() map[string]string {
	copied := make(map[string]string, len(s.values))
	for name, value := range s.values {
		copied[name] = value
	}
	return copied
}
