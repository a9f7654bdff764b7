package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
)

// scriptedDriver answers every prompt from a fixed table keyed by message.
type scriptedDriver struct {
	answers  map[string]string
	messages []string
}

func (d *scriptedDriver) answer(message string) (string, error) {
	d.messages = append(d.messages, message)
	value, ok := d.answers[message]
	if !ok {
		return "", fmt.Errorf("unexpected prompt %q", message)
	}
	return value, nil
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	return d.answer(cfg.Message)
}

func (d *scriptedDriver) Password(_ context.Context, cfg tui.InputConfig) (string, error) {
	return d.answer(cfg.Message)
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	value, err := d.answer(cfg.Message)
	return value == "yes", err
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	value, err := d.answer(cfg.Message)
	if err != nil {
		return -1, err
	}
	for i, option := range cfg.Options {
		if option == value {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q not among %v", value, cfg.Options)
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func validAnswers() map[string]string {
	return map[string]string{
		"First Name":               "Asha",
		"Last Name":                "Rao",
		"Username":                 "asha",
		"Email":                    "asha@example.com",
		"PAN No.":                  "ABCDE1234F",
		"Aadhar No.":               "123412341234",
		"Show Password":            "no",
		"Password":                 "s3cret",
		"Phone No. (phone code)":   "+91",
		"Phone No. (phone number)": "9876543210",
		"Country":                  "India",
		"City":                     "Delhi",
	}
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "regform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPromptCommandPrintsJSON(t *testing.T) {
	var out bytes.Buffer
	a := newApp(&out)
	a.driver = &scriptedDriver{answers: validAnswers()}

	cfg := writeConfig(t, "log:\n  level: error\n")
	require.NoError(t, run(t, a, "--config", cfg, "prompt"))

	var fields registration.Fields
	require.NoError(t, json.Unmarshal(out.Bytes(), &fields))
	assert.Equal(t, "Asha", fields.FirstName)
	assert.Equal(t, "Delhi", fields.City)
	assert.False(t, fields.ShowPassword)
	assert.True(t, registration.IsSubmittable(fields))
}

func TestPromptCommandAppliesOverlayAndWritesFile(t *testing.T) {
	dir := t.TempDir()
	overlay := filepath.Join(dir, "ui.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("forms:\n  registration:\n    fields:\n      pan:\n        label: PAN\n"), 0o600))
	cfg := writeConfig(t, "log:\n  level: error\nform:\n  ui_schema: "+overlay+"\n")

	answers := validAnswers()
	answers["PAN"] = answers["PAN No."]
	delete(answers, "PAN No.")

	var out bytes.Buffer
	a := newApp(&out)
	a.driver = &scriptedDriver{answers: answers}

	target := filepath.Join(dir, "out.txt")
	require.NoError(t, run(t, a, "--config", cfg, "prompt", "--format", "pretty", "--output", target))
	assert.Contains(t, out.String(), "Registration written to")

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), "PAN: ABCDE1234F\n")
}

func TestPromptCommandRejectsUnknownFormat(t *testing.T) {
	a := newApp(&bytes.Buffer{})
	a.driver = &scriptedDriver{answers: validAnswers()}

	err := run(t, a, "--config", writeConfig(t, "log:\n  level: error\n"), "prompt", "--format", "xml")
	require.Error(t, err)
}

func TestOpenAPICommand(t *testing.T) {
	var out bytes.Buffer
	a := newApp(&out)

	require.NoError(t, run(t, a, "--config", writeConfig(t, "log:\n  level: error\n"), "openapi", "--server", "http://localhost:8080"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Contains(t, out.String(), "http://localhost:8080")
}

func TestInvalidConfigFailsBeforeServing(t *testing.T) {
	a := newApp(&bytes.Buffer{})

	err := run(t, a, "--config", writeConfig(t, "navigation:\n  ttl: 0s\n"), "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigation.ttl")
}

func TestUnknownLogLevelFails(t *testing.T) {
	a := newApp(&bytes.Buffer{})

	err := run(t, a, "--config", writeConfig(t, "{}\n"), "--log-level", "chatty", "openapi")
	require.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	var out bytes.Buffer
	a := newApp(&out)

	cfg := writeConfig(t, "log:\n  level: error\nform:\n  default_phone_code: \"+44\"\n")
	require.NoError(t, run(t, a, "--config", cfg, "render"))

	html := out.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `name="phoneCode" value="+44"`)
	assert.Contains(t, html, `<button type="submit" disabled>`)
}
