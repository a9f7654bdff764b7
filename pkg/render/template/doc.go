// Package template defines the renderer-agnostic template contract. The
// gotemplate subpackage provides the pongo2-backed engine used by the HTML
// renderer.
package template
