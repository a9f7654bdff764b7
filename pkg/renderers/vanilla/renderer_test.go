package vanilla_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
	"github.com/goliatone/go-regform/pkg/testsupport"
)

func citiesResolver(field model.Field, values map[string]any) []string {
	if field.Name == registration.FieldCity {
		country, _ := values[registration.FieldCountry].(string)
		return registration.CitiesFor(country)
	}
	return field.Enum
}

func newRenderer(t *testing.T) *vanilla.Renderer {
	t.Helper()

	r, err := vanilla.New(vanilla.WithOptionsResolver(citiesResolver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderForm(t *testing.T, fields registration.Fields, errs registration.ValidationErrors) string {
	t.Helper()

	form := registration.Form()
	out, err := newRenderer(t).Render(context.Background(), form, render.RenderOptions{
		Values:      fields.Values(),
		Errors:      render.MapErrors(form, errs).Fields,
		Submittable: registration.IsSubmittable(fields),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_EmptyFormDisablesSubmitAndCity(t *testing.T) {
	html := renderForm(t, registration.Fields{PhoneCode: "+91"}, nil)

	for _, want := range []string{
		"<h2>Registration Form</h2>",
		`<button type="submit" disabled>Submit</button>`,
		`id="fg-city" name="city"`,
		`data-depends-on="country" disabled`,
		`<option value="">Select Country</option>`,
		`<option value="India">India</option>`,
		`id="fg-password" type="password"`,
		`value="+91"`,
		`id="fg-email" type="email"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "regform-error\"") {
		t.Fatalf("no error lines expected before the first submit")
	}
}

func TestRender_ValidFormEnablesSubmit(t *testing.T) {
	html := renderForm(t, testsupport.ValidFields(), nil)

	if !strings.Contains(html, `<button type="submit">Submit</button>`) {
		t.Fatalf("expected enabled submit button:\n%s", html)
	}
	if !strings.Contains(html, `<option value="Mumbai" selected>Mumbai</option>`) {
		t.Fatalf("expected selected city:\n%s", html)
	}
	if strings.Contains(html, `<option value="New York"`) {
		t.Fatalf("city options should follow the selected country")
	}
}

func TestRender_ShowsOneErrorPerField(t *testing.T) {
	fields := testsupport.ValidFields()
	fields.Email = "not-an-email"
	fields.PhoneNumber = ""

	html := renderForm(t, fields, registration.Validate(fields))

	if !strings.Contains(html, registration.MsgEmailInvalid) {
		t.Fatalf("expected email message:\n%s", html)
	}
	if !strings.Contains(html, `id="fg-phoneNumber-error"`) {
		t.Fatalf("phone group should show the phone number error:\n%s", html)
	}
	if strings.Count(html, registration.MsgPhoneNumberRequired) != 1 {
		t.Fatalf("expected exactly one phone number message")
	}
	if strings.Contains(html, registration.MsgCityRequired) {
		t.Fatalf("valid fields must not show messages")
	}
}

func TestRender_ShowPasswordRendersClearText(t *testing.T) {
	fields := testsupport.ValidFields()
	fields.ShowPassword = true

	html := renderForm(t, fields, nil)

	if !strings.Contains(html, `id="fg-password" type="text"`) {
		t.Fatalf("expected clear text password:\n%s", html)
	}
	if !strings.Contains(html, `name="showPassword" value="on" checked`) {
		t.Fatalf("expected checked toggle:\n%s", html)
	}
}

func TestRender_KeepsStaleCity(t *testing.T) {
	fields := testsupport.ValidFields()
	fields.Country = "USA"

	html := renderForm(t, fields, nil)

	if !strings.Contains(html, `<option value="Mumbai" selected>Mumbai</option>`) {
		t.Fatalf("stale city should be kept selected:\n%s", html)
	}
	if !strings.Contains(html, `<option value="Chicago">Chicago</option>`) {
		t.Fatalf("expected USA cities:\n%s", html)
	}
}

func TestRender_EscapesValues(t *testing.T) {
	fields := testsupport.ValidFields()
	fields.FirstName = `"><script>alert(1)</script>`

	html := renderForm(t, fields, nil)

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("user values must be escaped:\n%s", html)
	}
}

func TestRender_FormErrorsAndHints(t *testing.T) {
	form := registration.Form()
	form.UIHints = map[string]string{"layout.title": "Join us", "layout.submitLabel": "Register"}

	out, err := newRenderer(t).Render(context.Background(), form, render.RenderOptions{
		FormErrors: []string{" Try again ", "Try again"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if strings.Count(html, "<li>Try again</li>") != 1 {
		t.Fatalf("expected one normalised form error:\n%s", html)
	}
	if !strings.Contains(html, "<h2>Join us</h2>") || !strings.Contains(html, ">Register</button>") {
		t.Fatalf("expected title and submit label hints:\n%s", html)
	}
}

func TestRenderSuccess_EchoesSnapshot(t *testing.T) {
	fields := testsupport.ValidFields()

	out, err := newRenderer(t).RenderSuccess(context.Background(), fields)
	if err != nil {
		t.Fatalf("render success: %v", err)
	}
	html := string(out)

	for _, want := range []string{"Form Submitted Successfully!", "firstName", "ABCDE1234F", "showPassword"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "data-empty") {
		t.Fatalf("snapshot page must not be marked empty")
	}
}

func TestRenderSuccess_EchoesValuesVerbatim(t *testing.T) {
	fields := testsupport.ValidFields()
	fields.FirstName = "Tom & Jerry"
	fields.LastName = "<b>"

	out, err := newRenderer(t).RenderSuccess(context.Background(), fields)
	if err != nil {
		t.Fatalf("render success: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`&quot;firstName&quot;: &quot;Tom &amp; Jerry&quot;`,
		`&quot;lastName&quot;: &quot;&lt;b&gt;&quot;`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, `\u00`) || strings.Contains(html, "<b>") {
		t.Fatalf("snapshot must be shown as typed and escaped once:\n%s", html)
	}
	if strings.Contains(html, "}\n</pre>") {
		t.Fatalf("snapshot should not end with a newline:\n%s", html)
	}
}

func TestRender_ControlIDsLinkLabelsAndErrors(t *testing.T) {
	errs := registration.Validate(registration.Fields{})
	html := renderForm(t, registration.Fields{}, errs)

	for _, want := range []string{
		`<label for="fg-firstName">First Name</label>`,
		`<input id="fg-firstName" type="text" name="firstName"`,
		`aria-describedby="fg-firstName-error"`,
		`<p id="fg-firstName-error"`,
		`<input id="fg-showPassword" type="checkbox" name="showPassword"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRenderSuccess_EmptyState(t *testing.T) {
	var missing *registration.Fields

	out, err := newRenderer(t).RenderSuccess(context.Background(), missing)
	if err != nil {
		t.Fatalf("render success: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "data-empty") || !strings.Contains(html, ">null</pre>") {
		t.Fatalf("expected empty state:\n%s", html)
	}
}

func TestRenderSuccess_CustomTemplatesAndOptions(t *testing.T) {
	files := fstest.MapFS{
		"templates/success.tmpl": {Data: []byte(`{{ title }}|{{ assets }}|{{ empty }}`)},
	}
	r, err := vanilla.New(
		vanilla.WithTemplatesFS(files),
		vanilla.WithAssetsPath("/static/"),
		vanilla.WithSuccessTitle("Thanks"),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.RenderSuccess(context.Background(), nil)
	if err != nil {
		t.Fatalf("render success: %v", err)
	}
	if got, want := string(out), "Thanks|/static|True"; got != want {
		t.Fatalf("unexpected output\nwant %q\ngot  %q", want, got)
	}
}

type recordingTemplates struct {
	names []string
}

func (r *recordingTemplates) RenderTemplate(name string, _ any, _ ...io.Writer) (string, error) {
	r.names = append(r.names, name)
	return "ok", nil
}

func (r *recordingTemplates) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func TestRender_UsesInjectedTemplateRenderer(t *testing.T) {
	templates := &recordingTemplates{}
	r, err := vanilla.New(vanilla.WithTemplateRenderer(templates))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := r.Render(context.Background(), registration.Form(), render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := r.RenderSuccess(context.Background(), nil); err != nil {
		t.Fatalf("render success: %v", err)
	}
	want := []string{"templates/form.tmpl", "templates/success.tmpl"}
	if strings.Join(templates.names, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected templates %v", templates.names)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newRenderer(t).Render(ctx, registration.Form(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestAssetsFS(t *testing.T) {
	fsys := vanilla.AssetsFS()
	for _, name := range []string{vanilla.StylesheetName, vanilla.RuntimeScriptName} {
		f, err := fsys.Open(name)
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		_ = f.Close()
	}
}
