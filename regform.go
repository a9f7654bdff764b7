// Package regform is the convenience entry point for embedding the
// registration form in another program. It re-exports the orchestrator and
// the embedded HTML bundles.
package regform

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/registration"
	"github.com/goliatone/go-regform/pkg/renderers/vanilla"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the registration form page for fields with the default
// HTML renderer. errs is the mapping from the last submit attempt, or nil.
func GenerateHTML(ctx context.Context, fields registration.Fields, errs registration.ValidationErrors, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, Request{
		Fields: fields,
		Errors: errs,
	})
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet and enhancement script.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(regform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
