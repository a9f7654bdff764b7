package registration

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrUnknownField is returned by UpdateField for names outside FieldNames.
	ErrUnknownField = errors.New("registration: unknown field")
	// ErrInputKind is returned when a checkbox change targets a text field.
	ErrInputKind = errors.New("registration: input kind does not match field")
	// ErrAlreadySubmitted is returned by Session operations once the session
	// reached the Submitted state.
	ErrAlreadySubmitted = errors.New("registration: form already submitted")
	// ErrNilFields guards method calls on a nil *Fields.
	ErrNilFields = errors.New("registration: fields are nil")
)

// ValidationErrors maps a field name to the single fixed message describing
// why the field is invalid. A field absent from the map is valid.
type ValidationErrors map[string]string

// Error renders the messages in field declaration order so the text is stable.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "registration: no validation errors"
	}
	messages := make([]string, 0, len(e))
	for _, name := range e.Fields() {
		messages = append(messages, name+": "+e[name])
	}
	return "registration: invalid form: " + strings.Join(messages, "; ")
}

// Fields returns the invalid field names, known fields first in declaration
// order followed by any other keys sorted alphabetically.
func (e ValidationErrors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	out := make([]string, 0, len(e))
	seen := make(map[string]struct{}, len(e))
	for _, name := range FieldNames() {
		if _, ok := e[name]; ok {
			out = append(out, name)
			seen[name] = struct{}{}
		}
	}
	var rest []string
	for name := range e {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
