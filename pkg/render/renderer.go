package render

import (
	"context"

	"github.com/goliatone/go-regform/pkg/model"
)

// Renderer converts a FormModel into a byte representation (HTML, text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
