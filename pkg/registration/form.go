package registration

import "github.com/goliatone/go-regform/pkg/model"

// FormID identifies the registration form in ui schema overlays.
const FormID = "registration"

var inputs = []model.Field{
	{Name: FieldFirstName, Type: model.FieldTypeString, Label: "First Name", Required: true},
	{Name: FieldLastName, Type: model.FieldTypeString, Label: "Last Name", Required: true},
	{Name: FieldUsername, Type: model.FieldTypeString, Label: "Username", Required: true},
	{Name: FieldEmail, Type: model.FieldTypeString, Format: model.FormatEmail, Label: "Email", Required: true},
	{Name: FieldPAN, Type: model.FieldTypeString, Label: "PAN No.", Required: true},
	{Name: FieldAadhar, Type: model.FieldTypeString, Label: "Aadhar No.", Required: true},
	{
		Name:     FieldPassword,
		Type:     model.FieldTypeString,
		Format:   model.FormatPassword,
		Label:    "Password",
		Required: true,
		Metadata: map[string]string{model.MetaToggle: FieldShowPassword},
	},
	{Name: FieldShowPassword, Type: model.FieldTypeBoolean, Format: model.FormatCheckbox, Label: "Show Password"},
	{
		Name:     FieldPhoneCode,
		Type:     model.FieldTypeString,
		Label:    "Phone No.",
		Metadata: map[string]string{model.MetaGroup: "phone", model.MetaWidth: "1/4"},
	},
	{
		Name:     FieldPhoneNumber,
		Type:     model.FieldTypeString,
		Label:    "Phone No.",
		Required: true,
		Metadata: map[string]string{model.MetaGroup: "phone", model.MetaWidth: "3/4"},
	},
	{
		Name:        FieldCountry,
		Type:        model.FieldTypeString,
		Format:      model.FormatSelect,
		Label:       "Country",
		Placeholder: "Select Country",
		Required:    true,
		Enum:        countries,
	},
	{
		Name:        FieldCity,
		Type:        model.FieldTypeString,
		Format:      model.FormatSelect,
		Label:       "City",
		Placeholder: "Select City",
		Required:    true,
		Metadata:    map[string]string{model.MetaDependsOn: FieldCountry},
	},
}

// Inputs returns the static rendering table in display order. Callers get an
// independent copy.
func Inputs() []model.Field {
	return Form().Fields
}

// Form wraps the input table in a FormModel.
func Form() model.FormModel {
	form := model.FormModel{
		OperationID: FormID,
		Endpoint:    "/",
		Method:      "POST",
		Summary:     "Registration Form",
		Fields:      inputs,
	}
	return form.Clone()
}
