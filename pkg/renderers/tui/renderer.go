package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
)

// Renderer drives the registration form through terminal prompts. It binds
// every answer to a registration.Session and keeps re-prompting the failing
// fields until the session submits.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	form         model.FormModel
	maxAttempts  int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// the static registration form).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		form:         registration.Form(),
		theme:        Theme{ErrorPrefix: "✗ "},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver()
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render prompts for form using opts.Values as the starting answers and
// returns the serialized snapshot once the form submits.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}

	session := registration.NewSession()
	for name, value := range opts.Values {
		if !registration.IsFieldName(name) {
			continue
		}
		if err := session.UpdateField(name, fmt.Sprint(value), kindFor(name)); err != nil {
			return nil, fmt.Errorf("tui: seed %s: %w", name, err)
		}
	}

	snapshot, err := r.collect(ctx, form, session)
	if err != nil {
		return nil, err
	}
	return r.Serialize(form, snapshot)
}

// Collect prompts for every input of the configured form, then submits the
// session. Failing fields are reported and prompted again until the session
// reaches the submitted state, the driver fails or the attempt limit is hit.
func (r *Renderer) Collect(ctx context.Context, session *registration.Session) (registration.Fields, error) {
	return r.collect(ctx, r.form, session)
}

func (r *Renderer) collect(ctx context.Context, form model.FormModel, session *registration.Session) (registration.Fields, error) {
	if ctx == nil {
		return registration.Fields{}, errors.New("tui: context is required")
	}
	if session == nil {
		return registration.Fields{}, ErrNilSession
	}
	if err := ctx.Err(); err != nil {
		return registration.Fields{}, err
	}

	pending := promptOrder(form.Fields)
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			if err := r.promptField(ctx, form, field, session); err != nil {
				return registration.Fields{}, err
			}
		}

		snapshot, err := session.Submit()
		if err == nil {
			return snapshot, nil
		}
		verrs, ok := registration.AsValidationErrors(err)
		if !ok {
			return registration.Fields{}, fmt.Errorf("tui: submit: %w", err)
		}

		if err := r.reportErrors(ctx, form, verrs); err != nil {
			return registration.Fields{}, err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return registration.Fields{}, fmt.Errorf("%w: %w", ErrTooManyAttempts, verrs)
		}
		pending = failing(form.Fields, verrs)
	}
}

func (r *Renderer) promptField(ctx context.Context, form model.FormModel, field model.Field, session *registration.Session) error {
	fields := session.Fields()
	current, known := fields.Value(field.Name)
	if !known {
		return nil
	}
	message := promptMessage(form.Fields, field)

	var (
		raw  string
		kind = registration.InputText
		err  error
	)

	switch {
	case field.Type == model.FieldTypeBoolean:
		checked, _ := current.(bool)
		var answer bool
		answer, err = r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: checked, Help: field.Description})
		raw, kind = strconv.FormatBool(answer), registration.InputCheckbox

	case field.Format == model.FormatSelect:
		options := field.Enum
		if parent := field.Metadata[model.MetaDependsOn]; parent != "" {
			parentValue, _ := fields.Value(parent)
			options = registration.CitiesFor(fmt.Sprint(parentValue))
			if len(options) == 0 {
				return r.info(ctx, fmt.Sprintf("%s: no options until %s is chosen", message, labelFor(form.Fields, parent)))
			}
		}
		var idx int
		idx, err = r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: indexOf(options, fmt.Sprint(current)),
			Help:         field.Description,
		})
		if err == nil {
			if idx < 0 || idx >= len(options) {
				return fmt.Errorf("tui: %s: selection %d out of range", field.Name, idx)
			}
			raw = options[idx]
		}

	case field.Format == model.FormatPassword && !revealed(field, fields):
		raw, err = r.driver.Password(ctx, InputConfig{Message: message, Help: field.Description})

	default:
		raw, err = r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: fmt.Sprint(current),
			Help:    helpText(field),
		})
	}
	if err != nil {
		return err
	}

	if err := session.UpdateField(field.Name, raw, kind); err != nil {
		return fmt.Errorf("tui: update %s: %w", field.Name, err)
	}
	return nil
}

func (r *Renderer) reportErrors(ctx context.Context, form model.FormModel, verrs registration.ValidationErrors) error {
	for _, name := range verrs.Fields() {
		line := fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, labelFor(form.Fields, name), verrs[name])
		if err := r.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

// Serialize encodes a snapshot in the configured output format. Pretty output
// lists fields in form order using their display labels.
func (r *Renderer) Serialize(form model.FormModel, fields registration.Fields) ([]byte, error) {
	if r.outputFormat != OutputFormatPrettyText {
		out, err := render.IndentJSON(fields)
		if err != nil {
			return nil, fmt.Errorf("tui: encode snapshot: %w", err)
		}
		return append(out, '\n'), nil
	}

	var buf bytes.Buffer
	for _, field := range form.Fields {
		value, ok := fields.Value(field.Name)
		if !ok {
			continue
		}
		if checked, isBool := value.(bool); isBool {
			value = "no"
			if checked {
				value = "yes"
			}
		}
		fmt.Fprintf(&buf, "%s: %v\n", promptMessage(form.Fields, field), value)
	}
	return buf.Bytes(), nil
}

// promptOrder moves toggle fields directly before the field they control so
// the masking choice is known when the controlled field is asked.
func promptOrder(fields []model.Field) []model.Field {
	toggles := make(map[string]model.Field)
	for _, field := range fields {
		if name := field.Metadata[model.MetaToggle]; name != "" {
			for _, candidate := range fields {
				if candidate.Name == name {
					toggles[field.Name] = candidate
				}
			}
		}
	}

	consumed := make(map[string]bool, len(toggles))
	for _, toggle := range toggles {
		consumed[toggle.Name] = true
	}

	out := make([]model.Field, 0, len(fields))
	for _, field := range fields {
		if consumed[field.Name] {
			continue
		}
		if toggle, ok := toggles[field.Name]; ok {
			out = append(out, toggle)
		}
		out = append(out, field)
	}
	return out
}

func failing(fields []model.Field, verrs registration.ValidationErrors) []model.Field {
	var out []model.Field
	for _, field := range promptOrder(fields) {
		if _, ok := verrs[field.Name]; ok {
			out = append(out, field)
		}
	}
	return out
}

func revealed(field model.Field, fields registration.Fields) bool {
	toggle := field.Metadata[model.MetaToggle]
	if toggle == "" {
		return false
	}
	value, _ := fields.Value(toggle)
	checked, _ := value.(bool)
	return checked
}

func kindFor(name string) registration.InputKind {
	if name == registration.FieldShowPassword {
		return registration.InputCheckbox
	}
	return registration.InputText
}

// promptMessage returns the field label, disambiguated when several fields in
// the same group share it.
func promptMessage(fields []model.Field, field model.Field) string {
	label := labelOf(field)
	group := field.Metadata[model.MetaGroup]
	if group == "" {
		return label
	}
	shared := 0
	for _, other := range fields {
		if other.Metadata[model.MetaGroup] == group && labelOf(other) == label {
			shared++
		}
	}
	if shared < 2 {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, humanize(field.Name))
}

func labelFor(fields []model.Field, name string) string {
	for _, field := range fields {
		if field.Name == name {
			return labelOf(field)
		}
	}
	return name
}

func labelOf(field model.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return humanize(field.Name)
}

func helpText(field model.Field) string {
	if field.Description != "" {
		return field.Description
	}
	if field.Placeholder != "" {
		return "e.g. " + field.Placeholder
	}
	return ""
}

func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
