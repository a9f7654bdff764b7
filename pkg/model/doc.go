// Package model defines the typed form model consumed by renderers. A form is a
// static, ordered table of fields (name, label, type/format) plus optional
// metadata and UI hints; it carries no validation semantics of its own.
// Decorators such as the ui schema overlay adjust labels and hints after the
// table is built.
package model
