package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithUIDecorators registers decorators that run once against the form before
// it is first rendered.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithBaseForm replaces the static registration form.
func WithBaseForm(form model.FormModel) Option {
	return func(o *Orchestrator) {
		o.base = form.Clone()
	}
}

// Orchestrator owns the decorated form and a renderer registry. The decorated
// form is built once and reused for every request.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	base            model.FormModel
	initialiseErr   error

	once    sync.Once
	form    model.FormModel
	formErr error
}

// New constructs an Orchestrator. Without a registry the vanilla HTML renderer
// is registered, resolving dependent select options with SelectOptions.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		base:            registration.Form(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.registry == nil {
		renderer, err := vanilla.New(vanilla.WithOptionsResolver(SelectOptions))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return o
		}
		o.registry, o.initialiseErr = render.NewRegistry(renderer)
	}
	return o
}

// Request describes one render of the form.
type Request struct {
	// Renderer names the renderer to use. Empty selects the default.
	Renderer string
	// Fields are the values to prefill.
	Fields registration.Fields
	// Errors is the mapping from the last submit attempt, nil before any.
	Errors registration.ValidationErrors
}

// Form returns a copy of the decorated form.
func (o *Orchestrator) Form() (model.FormModel, error) {
	o.once.Do(func() {
		form := o.base.Clone()
		for _, decorator := range o.decorators {
			if decorator == nil {
				continue
			}
			if err := decorator.Decorate(&form); err != nil {
				o.formErr = fmt.Errorf("orchestrator: decorate form: %w", err)
				return
			}
		}
		o.form = form
	})
	if o.formErr != nil {
		return model.FormModel{}, o.formErr
	}
	return o.form.Clone(), nil
}

// Renderer returns the renderer for name, or the default when name is empty.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

// Generate renders the decorated form for the request. Field errors are split
// from form-level ones and the submit trigger reflects IsSubmittable for the
// current fields.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}
	form, err := o.Form()
	if err != nil {
		return nil, err
	}

	mapping := render.MapErrors(form, req.Errors)
	output, err := renderer.Render(ctx, form, render.RenderOptions{
		Values:      req.Fields.Values(),
		Errors:      mapping.Fields,
		FormErrors:  mapping.Form,
		Submittable: registration.IsSubmittable(req.Fields),
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// SelectOptions resolves choices for select controls. Dependent selects take
// their options from the parent's current value via the city lookup.
func SelectOptions(field model.Field, values map[string]any) []string {
	parent := field.Metadata[model.MetaDependsOn]
	if parent == "" {
		return append([]string(nil), field.Enum...)
	}
	value, _ := values[parent].(string)
	return registration.CitiesFor(value)
}
