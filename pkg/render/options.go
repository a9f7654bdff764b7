package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by field name.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field name. Renderers show at
	// most one message beneath each control.
	Errors map[string][]string
	// FormErrors are messages that do not belong to a single field.
	FormErrors []string
	// Submittable controls the enabled state of the submit trigger.
	Submittable bool
}

// FirstError returns the message displayed beneath field, if any.
func (o RenderOptions) FirstError(field string) string {
	for _, message := range o.Errors[field] {
		if message != "" {
			return message
		}
	}
	return ""
}
