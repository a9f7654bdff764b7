// Package openapi describes the registration API as an OpenAPI 3 document.
// The request schema is derived from the registration input table and rule
// set so the published contract tracks the validator.
package openapi
