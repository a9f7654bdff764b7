package uischema

// Store keeps the parsed overlays keyed by form id. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	forms map[string]Overlay
}

// Overlay describes the presentation overrides for one form.
type Overlay struct {
	ID     string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig captures form-level copy.
type FormConfig struct {
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	Description string `json:"description" yaml:"description"`
	SubmitLabel string `json:"submitLabel" yaml:"submitLabel"`
}

// FieldConfig customises how a single field is presented.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}
