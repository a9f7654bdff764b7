package registration

import (
	"fmt"
	"strings"
)

// Field names recognised by UpdateField. They double as the JSON keys of Fields
// and as the keys of ValidationErrors.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldShowPassword = "showPassword"
	FieldPhoneCode    = "phoneCode"
	FieldPhoneNumber  = "phoneNumber"
	FieldCountry      = "country"
	FieldCity         = "city"
	FieldPAN          = "pan"
	FieldAadhar       = "aadhar"
)

// InputKind describes the control that produced a change event.
type InputKind string

const (
	InputText     InputKind = "text"
	InputCheckbox InputKind = "checkbox"
)

// Fields is the complete set of values entered by the user. The zero value is
// the empty form. Fields is a plain value: copying it yields an independent
// snapshot.
type Fields struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ShowPassword bool   `json:"showPassword"`
	PhoneCode    string `json:"phoneCode"`
	PhoneNumber  string `json:"phoneNumber"`
	Country      string `json:"country"`
	City         string `json:"city"`
	PAN          string `json:"pan"`
	Aadhar       string `json:"aadhar"`
}

// FieldNames lists every recognised field name in declaration order.
func FieldNames() []string {
	return []string{
		FieldFirstName,
		FieldLastName,
		FieldUsername,
		FieldEmail,
		FieldPassword,
		FieldShowPassword,
		FieldPhoneCode,
		FieldPhoneNumber,
		FieldCountry,
		FieldCity,
		FieldPAN,
		FieldAadhar,
	}
}

// IsFieldName reports whether name is one of the recognised field names.
func IsFieldName(name string) bool {
	for _, candidate := range FieldNames() {
		if candidate == name {
			return true
		}
	}
	return false
}

// UpdateField replaces the value of a single field. Checkbox changes store the
// checked state parsed from raw. No validation runs as a side effect. Unknown
// names leave the fields untouched and return ErrUnknownField.
func (f *Fields) UpdateField(name, raw string, kind InputKind) error {
	if f == nil {
		return ErrNilFields
	}
	if name == FieldShowPassword || kind == InputCheckbox {
		if name != FieldShowPassword {
			if !IsFieldName(name) {
				return fmt.Errorf("%w: %q", ErrUnknownField, name)
			}
			return fmt.Errorf("%w: %q is not a checkbox", ErrInputKind, name)
		}
		f.ShowPassword = parseChecked(raw)
		return nil
	}

	target := f.stringField(name)
	if target == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	*target = raw
	return nil
}

// Value returns the current value of a field by name. showPassword is returned
// as a bool, everything else as a string.
func (f Fields) Value(name string) (any, bool) {
	if name == FieldShowPassword {
		return f.ShowPassword, true
	}
	target := f.stringField(name)
	if target == nil {
		return nil, false
	}
	return *target, true
}

// Values flattens the fields into a name keyed map, the shape renderers use to
// prefill controls.
func (f Fields) Values() map[string]any {
	out := make(map[string]any, len(FieldNames()))
	for _, name := range FieldNames() {
		value, _ := f.Value(name)
		out[name] = value
	}
	return out
}

func (f *Fields) stringField(name string) *string {
	switch name {
	case FieldFirstName:
		return &f.FirstName
	case FieldLastName:
		return &f.LastName
	case FieldUsername:
		return &f.Username
	case FieldEmail:
		return &f.Email
	case FieldPassword:
		return &f.Password
	case FieldPhoneCode:
		return &f.PhoneCode
	case FieldPhoneNumber:
		return &f.PhoneNumber
	case FieldCountry:
		return &f.Country
	case FieldCity:
		return &f.City
	case FieldPAN:
		return &f.PAN
	case FieldAadhar:
		return &f.Aadhar
	default:
		return nil
	}
}

func parseChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "1", "yes", "checked":
		return true
	default:
		return false
	}
}
