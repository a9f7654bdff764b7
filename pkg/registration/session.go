package registration

// State is the position of a Session in the submit state machine.
type State int

const (
	// StateEditing accepts field updates and submit attempts.
	StateEditing State = iota
	// StateSubmitted is terminal; the snapshot belongs to the success view.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// SessionOption configures a Session before first use.
type SessionOption func(*Session)

// WithPhoneCode seeds the phone code field.
func WithPhoneCode(code string) SessionOption {
	return func(s *Session) {
		s.fields.PhoneCode = code
	}
}

// WithFields seeds the session with previously entered values.
func WithFields(fields Fields) SessionOption {
	return func(s *Session) {
		s.fields = fields
	}
}

// Session owns the mutable form state of one form view: the current fields,
// the last displayed error mapping and the Editing/Submitted state. A Session
// is driven by a single input loop and is not safe for concurrent use.
type Session struct {
	fields   Fields
	errors   ValidationErrors
	state    State
	snapshot Fields
}

// NewSession returns a Session in the Editing state.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{state: StateEditing}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// State reports the current state.
func (s *Session) State() State {
	return s.state
}

// Fields returns a copy of the current field values.
func (s *Session) Fields() Fields {
	return s.fields
}

// Errors returns the mapping produced by the last failed submit attempt. It is
// nil before the first attempt and after a successful one.
func (s *Session) Errors() ValidationErrors {
	if len(s.errors) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// UpdateField applies a change event. It is only valid while Editing.
func (s *Session) UpdateField(name, raw string, kind InputKind) error {
	if s.state != StateEditing {
		return ErrAlreadySubmitted
	}
	return s.fields.UpdateField(name, raw, kind)
}

// Submittable reports whether the current fields pass validation.
func (s *Session) Submittable() bool {
	return IsSubmittable(s.fields)
}

// Submit runs a submit attempt. Success moves the session to Submitted and
// returns the snapshot; failure keeps it Editing and replaces Errors wholesale.
func (s *Session) Submit() (Fields, error) {
	if s.state != StateEditing {
		return Fields{}, ErrAlreadySubmitted
	}
	snapshot, err := Submit(s.fields)
	if err != nil {
		s.errors, _ = AsValidationErrors(err)
		return Fields{}, err
	}
	s.errors = nil
	s.snapshot = snapshot
	s.state = StateSubmitted
	return snapshot, nil
}

// Snapshot returns the payload captured by a successful submit.
func (s *Session) Snapshot() (Fields, bool) {
	if s.state != StateSubmitted {
		return Fields{}, false
	}
	return s.snapshot, true
}
