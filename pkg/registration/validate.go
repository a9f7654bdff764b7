package registration

import (
	"regexp"
	"strings"
	"unicode"
)

// Fixed validation messages.
const (
	MsgFirstNameRequired   = "First Name is required."
	MsgLastNameRequired    = "Last Name is required."
	MsgUsernameRequired    = "Username is required."
	MsgEmailInvalid        = "Valid email is required."
	MsgPasswordRequired    = "Password is required."
	MsgPhoneNumberRequired = "Phone Number is required."
	MsgCountryRequired     = "Country is required."
	MsgCityRequired        = "City is required."
	MsgPANRequired         = "PAN No. is required."
	MsgAadharRequired      = "Aadhar No. is required."
)

// EmailPattern accepts "local@domain.tld" where no part contains '@'.
const EmailPattern = `^[^@]+@[^@]+\.[^@]+$`

var emailRe = regexp.MustCompile(EmailPattern)

type rule struct {
	field   string
	message string
	invalid func(Fields) bool
}

// rules run independently; every rule is evaluated on every pass.
var rules = []rule{
	{FieldFirstName, MsgFirstNameRequired, func(f Fields) bool { return blank(f.FirstName) }},
	{FieldLastName, MsgLastNameRequired, func(f Fields) bool { return blank(f.LastName) }},
	{FieldUsername, MsgUsernameRequired, func(f Fields) bool { return blank(f.Username) }},
	{FieldEmail, MsgEmailInvalid, func(f Fields) bool { return blank(f.Email) || !emailRe.MatchString(f.Email) }},
	{FieldPassword, MsgPasswordRequired, func(f Fields) bool { return f.Password == "" }},
	{FieldPhoneNumber, MsgPhoneNumberRequired, func(f Fields) bool { return blank(f.PhoneNumber) }},
	{FieldCountry, MsgCountryRequired, func(f Fields) bool { return f.Country == "" }},
	{FieldCity, MsgCityRequired, func(f Fields) bool { return f.City == "" }},
	{FieldPAN, MsgPANRequired, func(f Fields) bool { return blank(f.PAN) }},
	{FieldAadhar, MsgAadharRequired, func(f Fields) bool { return blank(f.Aadhar) }},
}

// Validate returns the full error mapping for fields. The result is never nil;
// an empty map means the form is submittable.
func Validate(fields Fields) ValidationErrors {
	errs := make(ValidationErrors)
	for _, r := range rules {
		if r.invalid(fields) {
			errs[r.field] = r.message
		}
	}
	return errs
}

// IsSubmittable reports whether Validate yields no errors. It is recomputed on
// every call.
func IsSubmittable(fields Fields) bool {
	return len(Validate(fields)) == 0
}

// RequiredFields lists the names that carry a validation rule.
func RequiredFields() []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.field)
	}
	return out
}

// Submit decides a submit attempt. On success it returns a copy of fields to be
// handed to the success view. On failure the returned error is a
// ValidationErrors value which replaces any previously displayed mapping.
func Submit(fields Fields) (Fields, error) {
	if errs := Validate(fields); len(errs) > 0 {
		return Fields{}, errs
	}
	return fields, nil
}

// blank reports whether value is empty once trimmed of the characters browsers
// strip in String.prototype.trim: Unicode white space and line terminators plus
// the byte order mark, but not NEL (U+0085).
func blank(value string) bool {
	return strings.TrimFunc(value, isTrimSpace) == ""
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
