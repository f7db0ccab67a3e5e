package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hamidafilali-design/Taskmanager/internal/utils"
)

//go:embed tasks.schema.json
var embeddedSchema string

// embeddedSchemaURL is the resource name the embedded schema is registered under.
const embeddedSchemaURL = "tasks.schema.json"

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath is the path to a JSON Schema file.
	// If empty, the embedded task-file schema is used.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// Err joins the validation errors into one, or returns nil when valid.
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return errors.Join(r.Errors...)
}

// CompileSchema compiles the task-file schema described by opts.
func CompileSchema(opts ValidationOptions) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	if opts.SchemaPath == "" {
		if err := compiler.AddResource(embeddedSchemaURL, strings.NewReader(embeddedSchema)); err != nil {
			return nil, fmt.Errorf("load embedded schema: %w", err)
		}
		schema, err := compiler.Compile(embeddedSchemaURL)
		if err != nil {
			return nil, fmt.Errorf("compile embedded schema: %w", err)
		}
		return schema, nil
	}

	absPath, err := filepath.Abs(opts.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema path: %w", err)
	}
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", absPath, err)
	}
	return schema, nil
}

// validateWithSchema decodes data and validates it against schema.
func validateWithSchema(schema *jsonschema.Schema, data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]error, 0),
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("parse task file: %w", err),
		})
		return result
	}
	if dec.More() {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("parse task file: unexpected data after top-level value"),
		})
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
