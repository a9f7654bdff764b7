package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/registration"
)

const (
	// Version is the OpenAPI version emitted by Build.
	Version = "3.0.3"

	fieldsSchemaName = "Fields"
	errorsSchemaName = "ValidationErrors"
	optionSchemaName = "Option"
	problemName      = "Problem"

	// notBlank mirrors the trimmed-empty rule: at least one character outside
	// the white space set the validator trims.
	notBlank = `[^\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`
)

// Option customises the generated document.
type Option func(*config)

type config struct {
	title      string
	apiVersion string
	servers    []string
}

// WithTitle overrides the document title.
func WithTitle(title string) Option {
	return func(c *config) {
		if title != "" {
			c.title = title
		}
	}
}

// WithAPIVersion overrides info.version.
func WithAPIVersion(version string) Option {
	return func(c *config) {
		if version != "" {
			c.apiVersion = version
		}
	}
}

// WithServer appends a server URL.
func WithServer(url string) Option {
	return func(c *config) {
		if url != "" {
			c.servers = append(c.servers, url)
		}
	}
}

// Build assembles and validates the registration API document.
func Build(ctx context.Context, opts ...Option) (*openapi3.T, error) {
	cfg := config{title: "Registration API", apiVersion: "1.0.0"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.apiVersion,
		},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				fieldsSchemaName: openapi3.NewSchemaRef("", component(fieldsSchemaName)),
				errorsSchemaName: openapi3.NewSchemaRef("", component(errorsSchemaName)),
				optionSchemaName: openapi3.NewSchemaRef("", component(optionSchemaName)),
				problemName:      openapi3.NewSchemaRef("", component(problemName)),
			},
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/api/countries", &openapi3.PathItem{Get: countriesOperation()}),
			openapi3.WithPath("/api/countries/{country}/cities", &openapi3.PathItem{Get: citiesOperation()}),
			openapi3.WithPath("/api/registrations/validate", &openapi3.PathItem{Post: validateOperation()}),
			openapi3.WithPath("/api/registrations", &openapi3.PathItem{Post: submitOperation()}),
		),
	}
	for _, url := range cfg.servers {
		doc.AddServer(&openapi3.Server{URL: url})
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: invalid document: %w", err)
	}
	return doc, nil
}

// JSON builds the document and encodes it.
func JSON(ctx context.Context, opts ...Option) ([]byte, error) {
	doc, err := Build(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// FieldsSchema returns the JSON schema for a registration payload. Every
// property listed in the input table is declared; fields carrying a rule are
// required and constrained the way the validator checks them.
func FieldsSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = registration.Form().Summary

	labels := make(map[string]string)
	for _, field := range registration.Inputs() {
		if _, seen := labels[field.Name]; !seen {
			labels[field.Name] = field.Label
		}
	}

	for _, name := range registration.FieldNames() {
		schema.WithProperty(name, propertySchema(name, labels[name]))
	}
	schema.Required = registration.RequiredFields()
	return schema
}

func propertySchema(name, label string) *openapi3.Schema {
	if name == registration.FieldShowPassword {
		prop := openapi3.NewBoolSchema()
		prop.Title = label
		return prop
	}

	prop := openapi3.NewStringSchema()
	prop.Title = label
	switch name {
	case registration.FieldEmail:
		prop.Format = model.FormatEmail
		prop.WithPattern(registration.EmailPattern)
	case registration.FieldPassword, registration.FieldCountry, registration.FieldCity:
		prop.WithMinLength(1)
	case registration.FieldPhoneCode:
		prop.Description = "Optional dialling prefix, never validated."
	default:
		prop.WithPattern(notBlank)
	}
	if name == registration.FieldPassword {
		prop.Format = model.FormatPassword
	}
	if name == registration.FieldCountry {
		prop.Description = "One of the listed countries; free text is accepted but has no cities."
	}
	return prop
}

func errorsSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())
	schema.Description = "Field name to message. Empty when the payload is valid."
	return schema
}

func optionSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("value", openapi3.NewStringSchema()).
		WithProperty("label", openapi3.NewStringSchema())
	schema.Required = []string{"value", "label"}
	return schema
}

func problemSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema())
	schema.Required = []string{"error"}
	return schema
}

func component(name string) *openapi3.Schema {
	switch name {
	case fieldsSchemaName:
		return FieldsSchema()
	case errorsSchemaName:
		return errorsSchema()
	case optionSchemaName:
		return optionSchema()
	case problemName:
		return problemSchema()
	default:
		panic("openapi: unknown component " + name)
	}
}

// ref points at a component while carrying the resolved value so the document
// validates without a loader pass.
func ref(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, component(name))
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(schema),
	}
}

func optionList() *openapi3.SchemaRef {
	data := openapi3.NewArraySchema()
	data.Items = ref(optionSchemaName)
	return openapi3.NewSchemaRef("", openapi3.NewObjectSchema().WithProperty("data", data))
}

func fieldsBody() *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref(fieldsSchemaName)),
	}
}

func countriesOperation() *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = "listCountries"
	op.Summary = "List selectable countries"
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Countries in display order", optionList())),
	)
	return op
}

func citiesOperation() *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = "listCities"
	op.Summary = "List cities for a country"
	op.AddParameter(openapi3.NewPathParameter("country").WithSchema(openapi3.NewStringSchema()))
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Cities for the country; empty for unknown countries", optionList())),
	)
	return op
}

func validateOperation() *openapi3.Operation {
	result := openapi3.NewObjectSchema().
		WithProperty("submittable", openapi3.NewBoolSchema())
	result.Properties["errors"] = ref(errorsSchemaName)
	result.Required = []string{"submittable", "errors"}

	op := openapi3.NewOperation()
	op.OperationID = "validateRegistration"
	op.Summary = "Validate a registration without submitting it"
	op.RequestBody = fieldsBody()
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, jsonResponse("Validation outcome", openapi3.NewSchemaRef("", result))),
		openapi3.WithStatus(http.StatusBadRequest, jsonResponse("Malformed JSON", ref(problemName))),
	)
	return op
}

func submitOperation() *openapi3.Operation {
	created := openapi3.NewObjectSchema()
	created.Properties = openapi3.Schemas{"data": ref(fieldsSchemaName)}
	created.Required = []string{"data"}

	rejected := openapi3.NewObjectSchema()
	rejected.Properties = openapi3.Schemas{"errors": ref(errorsSchemaName)}
	rejected.Required = []string{"errors"}

	op := openapi3.NewOperation()
	op.OperationID = "submitRegistration"
	op.Summary = "Submit a registration"
	op.Description = "Nothing is stored; a valid submission echoes the snapshot back."
	op.RequestBody = fieldsBody()
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusCreated, jsonResponse("Accepted snapshot", openapi3.NewSchemaRef("", created))),
		openapi3.WithStatus(http.StatusBadRequest, jsonResponse("Malformed JSON", ref(problemName))),
		openapi3.WithStatus(http.StatusUnprocessableEntity, jsonResponse("Validation failed", openapi3.NewSchemaRef("", rejected))),
	)
	return op
}
