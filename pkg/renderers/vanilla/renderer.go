package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
	rendertemplate "github.com/goliatone/go-regform/pkg/render/template"
	gotemplate "github.com/goliatone/go-regform/pkg/render/template/gotemplate"
)

const (
	formTemplate    = "templates/form.tmpl"
	successTemplate = "templates/success.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	resolver         OptionsResolver
	assetsPath       string
	successTitle     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithOptionsResolver narrows select options based on the current values.
func WithOptionsResolver(fn OptionsResolver) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.resolver = fn
		}
	}
}

// WithAssetsPath sets the URL prefix the pages use for the stylesheet and the
// enhancement script.
func WithAssetsPath(prefix string) Option {
	return func(cfg *config) {
		cfg.assetsPath = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// WithSuccessTitle overrides the success page heading.
func WithSuccessTitle(title string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(title) != "" {
			cfg.successTitle = title
		}
	}
}

// Renderer produces the HTML form page and the success page.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	resolver     OptionsResolver
	assetsPath   string
	successTitle string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		resolver:     enumOptions,
		assetsPath:   "/assets",
		successTitle: "Form Submitted Successfully!",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		resolver:     cfg.resolver,
		assetsPath:   cfg.assetsPath,
		successTitle: cfg.successTitle,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form page. Description and layout.subtitle hints are
// emitted unescaped and must already be sanitised (the ui schema decorator
// does this).
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	title := form.Summary
	if hint := strings.TrimSpace(form.UIHints["layout.title"]); hint != "" {
		title = hint
	}
	submitLabel := "Submit"
	if hint := strings.TrimSpace(form.UIHints["layout.submitLabel"]); hint != "" {
		submitLabel = hint
	}

	result, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"title":       title,
		"subtitle":    form.UIHints["layout.subtitle"],
		"description": form.Description,
		"form": map[string]any{
			"id":       form.OperationID,
			"endpoint": form.Endpoint,
			"method":   strings.ToUpper(form.Method),
		},
		"blocks":      buildBlocks(form, opts, r.resolver),
		"formErrors":  render.MergeFormErrors(opts.FormErrors),
		"submittable": opts.Submittable,
		"submitLabel": submitLabel,
		"assets":      r.assetsPath,
		"classes":     chromeClasses(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// RenderSuccess produces the confirmation page echoing payload as indented
// JSON. A nil payload (no snapshot was handed over) renders the empty state.
func (r *Renderer) RenderSuccess(ctx context.Context, payload any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	pretty, err := render.IndentJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: encode payload: %w", err)
	}

	result, err := r.templates.RenderTemplate(successTemplate, map[string]any{
		"title":    r.successTitle,
		"empty":    string(pretty) == "null",
		"snapshot": string(pretty),
		"assets":   r.assetsPath,
		"classes":  chromeClasses(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render success template: %w", err)
	}
	return []byte(result), nil
}
