// Package orchestrator assembles the registration form (static input table
// plus ui decorators) and renders it for a submit attempt's state through a
// named renderer.
package orchestrator
