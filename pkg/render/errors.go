package render

import (
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
)

// ErrorMapping splits validation messages into those shown under a control
// and those shown above the form.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors places each message of a name->message validation result under
// its field. Names the form does not declare become form-level messages.
func MapErrors(form model.FormModel, errs map[string]string) ErrorMapping {
	if len(errs) == 0 {
		return ErrorMapping{}
	}

	known := make(map[string]bool, len(form.Fields))
	for _, field := range form.Fields {
		known[field.Name] = true
	}

	mapping := ErrorMapping{Fields: make(map[string][]string, len(errs))}
	for name, message := range errs {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if known[strings.TrimSpace(name)] {
			mapping.Fields[strings.TrimSpace(name)] = []string{message}
			continue
		}
		mapping.Form = append(mapping.Form, message)
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = MergeFormErrors(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping blanks and duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	seen := make(map[string]bool, len(existing)+len(extras))
	var out []string
	for _, message := range append(append([]string(nil), existing...), extras...) {
		message = strings.TrimSpace(message)
		if message == "" || seen[message] {
			continue
		}
		seen[message] = true
		out = append(out, message)
	}
	return out
}
