package tui

import "github.com/goliatone/go-regform/pkg/model"

// OutputFormat controls how the submitted snapshot is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the snapshot as indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits a human-friendly "Label: value" summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional prefixes the renderer applies when printing
// messages through the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithForm replaces the form Collect prompts from, typically a decorated copy
// of the registration form.
func WithForm(form model.FormModel) Option {
	return func(r *Renderer) {
		r.form = form.Clone()
	}
}

// WithMaxAttempts bounds the number of submit attempts. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}
