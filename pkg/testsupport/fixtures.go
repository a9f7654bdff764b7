package testsupport

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/goliatone/go-regform/pkg/registration"
)

// ValidFields returns a fully valid registration used across package tests.
func ValidFields() registration.Fields {
	return registration.Fields{
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

// MustJSON marshals value or fails the test.
func MustJSON(t *testing.T, value any) []byte {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

// DecodeFields decodes a JSON registration payload or fails the test.
func DecodeFields(t *testing.T, r io.Reader) registration.Fields {
	t.Helper()

	var out registration.Fields
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	return out
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
