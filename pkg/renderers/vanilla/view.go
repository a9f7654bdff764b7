package vanilla

import (
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
)

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type controlView struct {
	Name        string       `json:"name"`
	Kind        string       `json:"kind"`
	InputType   string       `json:"inputType,omitempty"`
	Value       string       `json:"value"`
	Checked     bool         `json:"checked"`
	Disabled    bool         `json:"disabled"`
	Placeholder string       `json:"placeholder,omitempty"`
	Label       string       `json:"label,omitempty"`
	DependsOn   string       `json:"dependsOn,omitempty"`
	WidthClass  string       `json:"widthClass,omitempty"`
	Options     []optionView `json:"options,omitempty"`
}

type blockView struct {
	Label       string        `json:"label"`
	For         string        `json:"for"`
	Description string        `json:"description,omitempty"`
	Error       string        `json:"error,omitempty"`
	ErrorFor    string        `json:"errorFor,omitempty"`
	Row         bool          `json:"row"`
	Controls    []controlView `json:"controls"`
	Toggle      *controlView  `json:"toggle,omitempty"`
}

// OptionsResolver returns the choices of a select field given the current
// values. Fields whose options depend on another field use it to narrow the
// list (city by country).
type OptionsResolver func(field model.Field, values map[string]any) []string

func enumOptions(field model.Field, _ map[string]any) []string {
	return field.Enum
}

// buildBlocks groups the flat field table into rendered blocks: grouped
// fields share a row, toggles attach to their owner, every block shows at most
// one error line.
func buildBlocks(form model.FormModel, opts render.RenderOptions, resolve OptionsResolver) []blockView {
	toggles := make(map[string]model.Field)
	for _, field := range form.Fields {
		if target := field.Metadata[model.MetaToggle]; target != "" {
			if toggle, ok := form.Field(target); ok {
				toggles[target] = toggle
			}
		}
	}

	var blocks []blockView
	groupIndex := make(map[string]int)

	for _, field := range form.Fields {
		if _, isToggle := toggles[field.Name]; isToggle {
			continue
		}

		control := buildControl(field, opts, resolve)
		message := opts.FirstError(field.Name)

		if group := field.Metadata[model.MetaGroup]; group != "" {
			if idx, ok := groupIndex[group]; ok {
				blocks[idx].Controls = append(blocks[idx].Controls, control)
				if blocks[idx].Error == "" && message != "" {
					blocks[idx].Error = message
					blocks[idx].ErrorFor = field.Name
				}
				continue
			}
			groupIndex[group] = len(blocks)
		}

		block := blockView{
			Label:       field.Label,
			For:         field.Name,
			Description: field.Description,
			Error:       message,
			Row:         field.Metadata[model.MetaGroup] != "",
			Controls:    []controlView{control},
		}
		if message != "" {
			block.ErrorFor = field.Name
		}

		if target := field.Metadata[model.MetaToggle]; target != "" {
			if toggle, ok := toggles[target]; ok {
				toggleControl := buildControl(toggle, opts, resolve)
				block.Toggle = &toggleControl
				if toggleControl.Checked && block.Controls[0].InputType == "password" {
					block.Controls[0].InputType = "text"
				}
			}
		}

		blocks = append(blocks, block)
	}
	return blocks
}

func buildControl(field model.Field, opts render.RenderOptions, resolve OptionsResolver) controlView {
	control := controlView{
		Name:        field.Name,
		Placeholder: field.Placeholder,
		Label:       field.Label,
		WidthClass:  widthClass(field.Metadata[model.MetaWidth]),
	}
	if hint := strings.TrimSpace(field.UIHints["placeholder"]); hint != "" {
		control.Placeholder = hint
	}

	switch {
	case field.Type == model.FieldTypeBoolean || field.Format == model.FormatCheckbox:
		control.Kind = "checkbox"
		control.InputType = "checkbox"
		control.Checked = boolValue(opts.Values, field.Name)
	case field.Format == model.FormatSelect:
		control.Kind = "select"
		control.Value = stringValue(opts.Values, field.Name)
		control.DependsOn = field.Metadata[model.MetaDependsOn]
		if control.DependsOn != "" && stringValue(opts.Values, control.DependsOn) == "" {
			control.Disabled = true
		}
		control.Options = selectOptions(resolve(field, opts.Values), control.Value)
	default:
		control.Kind = "input"
		control.Value = stringValue(opts.Values, field.Name)
		switch field.Format {
		case model.FormatEmail:
			control.InputType = "email"
		case model.FormatPassword:
			control.InputType = "password"
		default:
			control.InputType = "text"
		}
	}
	return control
}

// selectOptions keeps a current value that is no longer offered (a city left
// over from a previous country) so the state survives a round trip.
func selectOptions(choices []string, current string) []optionView {
	options := make([]optionView, 0, len(choices)+1)
	found := current == ""
	for _, choice := range choices {
		selected := choice == current
		if selected {
			found = true
		}
		options = append(options, optionView{Value: choice, Label: choice, Selected: selected})
	}
	if !found {
		options = append(options, optionView{Value: current, Label: current, Selected: true})
	}
	return options
}
