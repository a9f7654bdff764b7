package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
)

// Field formats understood by the renderers. A string field without a format
// renders as a plain text input.
const (
	FormatText     = ""
	FormatEmail    = "email"
	FormatPassword = "password"
	FormatSelect   = "select"
	FormatCheckbox = "checkbox"
)

// Metadata keys shared between the registration table and the renderers.
const (
	// MetaGroup places related inputs (phone code + number) on one row under
	// the label of the group leader.
	MetaGroup = "group"
	// MetaDependsOn names the field whose value selects this field's options.
	MetaDependsOn = "dependsOn"
	// MetaToggle names a checkbox field rendered inside this field's block.
	MetaToggle = "toggle"
	// MetaWidth is a CSS width hint ("1/4", "3/4").
	MetaWidth = "width"
)

// Field models an individual input inside a form. Struct fields are annotated
// so renderers can serialise them directly when needed.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
}

// Field returns the field named name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy so decorators can mutate without touching shared
// static tables.
func (f FormModel) Clone() FormModel {
	out := f
	out.Metadata = cloneStrings(f.Metadata)
	out.UIHints = cloneStrings(f.UIHints)
	out.Fields = make([]Field, len(f.Fields))
	for i, field := range f.Fields {
		field.Enum = append([]string(nil), field.Enum...)
		field.Metadata = cloneStrings(field.Metadata)
		field.UIHints = cloneStrings(field.UIHints)
		out.Fields[i] = field
	}
	return out
}

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
