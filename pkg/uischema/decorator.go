package uischema

import (
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
)

// Decorator applies overlay copy to a form model.
type Decorator struct {
	store *Store
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate augments the supplied form model with overlay copy. When no overlay
// matches the form id the form is left untouched. Overrides for names the form
// does not declare are ignored.
func (d *Decorator) Decorate(form *model.FormModel) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}

	overlay, ok := d.store.Overlay(form.OperationID)
	if !ok {
		return nil
	}

	applyFormConfig(form, overlay.Form)
	for i := range form.Fields {
		if cfg, ok := overlay.Fields[form.Fields[i].Name]; ok {
			applyFieldConfig(&form.Fields[i], cfg)
		}
	}
	return nil
}

func applyFormConfig(form *model.FormModel, cfg FormConfig) {
	if title := strings.TrimSpace(cfg.Title); title != "" {
		form.UIHints = ensureUIHints(form.UIHints)
		form.UIHints["layout.title"] = title
	}
	if subtitle := SanitizeHTML(cfg.Subtitle); subtitle != "" {
		form.UIHints = ensureUIHints(form.UIHints)
		form.UIHints["layout.subtitle"] = subtitle
	}
	if label := strings.TrimSpace(cfg.SubmitLabel); label != "" {
		form.UIHints = ensureUIHints(form.UIHints)
		form.UIHints["layout.submitLabel"] = label
	}
	if description := SanitizeHTML(cfg.Description); description != "" {
		form.Description = description
	}
}

func applyFieldConfig(field *model.Field, cfg FieldConfig) {
	if label := strings.TrimSpace(cfg.Label); label != "" {
		field.Label = label
	}
	if placeholder := strings.TrimSpace(cfg.Placeholder); placeholder != "" {
		field.Placeholder = placeholder
	}
	if description := SanitizeHTML(cfg.Description); description != "" {
		field.Description = description
	}
	for key, value := range cfg.UIHints {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		field.UIHints = ensureUIHints(field.UIHints)
		field.UIHints[key] = strings.TrimSpace(value)
	}
}

func ensureUIHints(hints map[string]string) map[string]string {
	if hints == nil {
		return make(map[string]string)
	}
	return hints
}
