package registration

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validFields() Fields {
	return Fields{
		FirstName:   "A",
		LastName:    "B",
		Username:    "ab",
		Email:       "a@b.com",
		Password:    "x",
		PhoneCode:   "+91",
		PhoneNumber: "1234567890",
		Country:     "India",
		City:        "Mumbai",
		PAN:         "ABCDE1234F",
		Aadhar:      "123456789012",
	}
}

func TestValidate_ValidFieldsYieldEmptyMapping(t *testing.T) {
	fields := validFields()

	errs := Validate(fields)
	if errs == nil {
		t.Fatalf("expected non-nil mapping")
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if !IsSubmittable(fields) {
		t.Fatalf("expected fields to be submittable")
	}
}

func TestValidate_BlankMatchesBrowserTrim(t *testing.T) {
	cases := []struct {
		value string
		blank bool
	}{
		{"\uFEFF", true},
		{"\u00A0\u3000\u2028", true},
		{" \t\r\n\v\f", true},
		{"\u0085", false},
		{"\u200B", false},
		{" A ", false},
	}

	for _, tc := range cases {
		fields := validFields()
		fields.FirstName = tc.value

		_, reported := Validate(fields)[FieldFirstName]
		if reported != tc.blank {
			t.Fatalf("first name %q: expected blank=%v, got %v", tc.value, tc.blank, reported)
		}
	}
}

func TestValidate_SingleMissingFieldIsReportedAlone(t *testing.T) {
	cases := []struct {
		field   string
		blank   func(*Fields)
		message string
	}{
		{FieldFirstName, func(f *Fields) { f.FirstName = "  " }, MsgFirstNameRequired},
		{FieldLastName, func(f *Fields) { f.LastName = "" }, MsgLastNameRequired},
		{FieldUsername, func(f *Fields) { f.Username = "\t" }, MsgUsernameRequired},
		{FieldEmail, func(f *Fields) { f.Email = " " }, MsgEmailInvalid},
		{FieldPassword, func(f *Fields) { f.Password = "" }, MsgPasswordRequired},
		{FieldPhoneNumber, func(f *Fields) { f.PhoneNumber = "   " }, MsgPhoneNumberRequired},
		{FieldCountry, func(f *Fields) { f.Country = "" }, MsgCountryRequired},
		{FieldCity, func(f *Fields) { f.City = "" }, MsgCityRequired},
		{FieldPAN, func(f *Fields) { f.PAN = " " }, MsgPANRequired},
		{FieldAadhar, func(f *Fields) { f.Aadhar = "" }, MsgAadharRequired},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			fields := validFields()
			tc.blank(&fields)

			got := Validate(fields)
			want := ValidationErrors{tc.field: tc.message}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("validate mismatch (-want +got):\n%s", diff)
			}
			if IsSubmittable(fields) {
				t.Fatalf("expected fields to be unsubmittable")
			}
		})
	}
}

func TestValidate_PasswordIsNotTrimmed(t *testing.T) {
	fields := validFields()
	fields.Password = "   "

	if errs := Validate(fields); len(errs) != 0 {
		t.Fatalf("whitespace password should be accepted, got %v", errs)
	}
}

func TestValidate_EmailPattern(t *testing.T) {
	cases := map[string]bool{
		"a@b.com":        true,
		"first.last@x.y": true,
		"a@b.c.d":        true,
		"not-an-email":   false,
		"a@b":            false,
		"@b.com":         false,
		"a@@b.com":       false,
		"a@b.":           false,
		"a@.com":         false,
	}

	for email, valid := range cases {
		fields := validFields()
		fields.Email = email
		_, invalid := Validate(fields)[FieldEmail]
		if invalid == valid {
			t.Fatalf("email %q: expected valid=%v", email, valid)
		}
	}
}

func TestValidate_IsPureAndIdempotent(t *testing.T) {
	fields := validFields()
	fields.Email = "nope"
	fields.City = ""
	before := fields

	first := Validate(fields)
	second := Validate(fields)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("validate not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, fields); diff != "" {
		t.Fatalf("validate mutated input (-before +after):\n%s", diff)
	}
	if IsSubmittable(fields) != IsSubmittable(fields) {
		t.Fatalf("IsSubmittable not stable")
	}
}

func TestSubmit_ValidFieldsReturnSnapshot(t *testing.T) {
	fields := validFields()

	payload, err := Submit(fields)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if diff := cmp.Diff(fields, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_InvalidEmailFailsWithEmailOnly(t *testing.T) {
	fields := validFields()
	fields.Email = "not-an-email"

	_, err := Submit(fields)
	verrs, ok := AsValidationErrors(err)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	want := ValidationErrors{FieldEmail: MsgEmailInvalid}
	if diff := cmp.Diff(want, verrs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_EmptyFormReportsAllRequiredFields(t *testing.T) {
	_, err := Submit(Fields{})

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	want := ValidationErrors{
		FieldFirstName:   MsgFirstNameRequired,
		FieldLastName:    MsgLastNameRequired,
		FieldUsername:    MsgUsernameRequired,
		FieldEmail:       MsgEmailInvalid,
		FieldPassword:    MsgPasswordRequired,
		FieldPhoneNumber: MsgPhoneNumberRequired,
		FieldCountry:     MsgCountryRequired,
		FieldCity:        MsgCityRequired,
		FieldPAN:         MsgPANRequired,
		FieldAadhar:      MsgAadharRequired,
	}
	if diff := cmp.Diff(want, verrs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	for name, message := range verrs {
		if name == FieldPhoneCode || name == FieldShowPassword {
			t.Fatalf("unexpected rule for %s", name)
		}
		if strings.Contains(message, "phoneCode") || strings.Contains(message, "showPassword") {
			t.Fatalf("unexpected message %q", message)
		}
	}
}

func TestValidationErrors_ErrorIsOrdered(t *testing.T) {
	errs := ValidationErrors{
		FieldCity:      MsgCityRequired,
		FieldFirstName: MsgFirstNameRequired,
		"zzz":          "extra",
	}

	want := "registration: invalid form: firstName: First Name is required.; city: City is required.; zzz: extra"
	if got := errs.Error(); got != want {
		t.Fatalf("error text mismatch:\nwant %q\ngot  %q", want, got)
	}
	if diff := cmp.Diff([]string{FieldFirstName, FieldCity, "zzz"}, errs.Fields()); diff != "" {
		t.Fatalf("fields order mismatch (-want +got):\n%s", diff)
	}
}

func TestRequiredFields_ExcludeUnvalidatedFields(t *testing.T) {
	for _, name := range RequiredFields() {
		if name == FieldPhoneCode || name == FieldShowPassword {
			t.Fatalf("%s must not carry a rule", name)
		}
	}
	if len(RequiredFields()) != 10 {
		t.Fatalf("expected 10 rules, got %d", len(RequiredFields()))
	}
}
