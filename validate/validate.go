// Package validate checks serialized author lists against an XSD schema.
//
// Validation is advisory: it reads the document and the schema, reports a
// verdict, and never modifies the document it was given.
package validate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"
)

// Result is the outcome of a validation run.
type Result struct {
	// Valid is true when the document conforms to the schema
	Valid bool

	// Errors lists schema violations in the order libxml2 reported them
	Errors []string

	// Err is set when validation could not run (I/O, schema or document
	// parse failure)
	Err error
}

// First returns the first violation, or the run error when validation did
// not complete.
func (r Result) First() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	return ""
}

// Verdict renders the result for humans.
func (r Result) Verdict() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("✗ Validation failed: %s", r.Err)
	case r.Valid:
		return "✓ Valid: document conforms to the schema"
	default:
		return fmt.Sprintf("✗ Invalid: %s", r.First())
	}
}

// File validates the document at docPath against the schema at schemaPath.
func File(docPath, schemaPath string) Result {
	doc, err := os.ReadFile(docPath)
	if err != nil {
		return Result{Err: fmt.Errorf("reading document: %w", err)}
	}
	return Bytes(doc, schemaPath)
}

// Bytes validates a serialized document against the schema at schemaPath.
func Bytes(doc []byte, schemaPath string) Result {
	buf, err := os.ReadFile(schemaPath)
	if err != nil {
		return Result{Err: fmt.Errorf("reading schema: %w", err)}
	}

	if len(buf) == 0 {
		return Result{Err: fmt.Errorf("schema %s is empty", schemaPath)}
	}

	// the path lets libxml2 resolve xs:include and xs:import locations
	// relative to the schema file
	schema, err := xsd.Parse(buf, xsd.WithPath(schemaPath))
	if err != nil {
		return Result{Err: fmt.Errorf("parsing schema %s: %w", schemaPath, err)}
	}
	defer schema.Free()

	parsed, err := libxml2.Parse(doc)
	if err != nil {
		return Result{Err: fmt.Errorf("parsing document: %w", err)}
	}
	defer parsed.Free()

	if err := schema.Validate(parsed); err != nil {
		sve, ok := err.(xsd.SchemaValidationError)
		if !ok {
			return Result{Err: fmt.Errorf("validating document: %w", err)}
		}

		result := Result{}
		for _, e := range sve.Errors() {
			result.Errors = append(result.Errors, e.Error())
		}
		if len(result.Errors) == 0 {
			result.Errors = []string{sve.Error()}
		}
		slog.Debug("schema validation failed", "schema", schemaPath, "violations", len(result.Errors))
		return result
	}

	return Result{Valid: true}
}
