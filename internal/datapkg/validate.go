package datapkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationIssue captures a single validation failure with its location in
// the instance document.
type ValidationIssue struct {
	Location string
	Message  string
}

// ValidationError aggregates the issues found while validating a document
// against the package schema.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issue.Location
		if location == "" {
			location = "#"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

// Compile parses the descriptor as a JSON schema. A descriptor that fails to
// compile is broken regardless of any instance, so this doubles as a lint.
func (p *Package) Compile() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(p.Path, bytes.NewReader(p.doc)); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", p.Path, err)
	}

	schema, err := compiler.Compile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", p.Path, err)
	}
	return schema, nil
}

// ValidateFile checks a JSON document against the package schema and reports
// every failure with its instance location.
func (p *Package) ValidateFile(dataPath string) error {
	schema, err := p.Compile()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("read instance %s: %w", dataPath, err)
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("parse instance %s: %w", dataPath, err)
	}

	if err := schema.Validate(instance); err != nil {
		var vErr *jsonschema.ValidationError
		if errors.As(err, &vErr) {
			return &ValidationError{Issues: collectIssues(vErr)}
		}
		return fmt.Errorf("validate %s: %w", dataPath, err)
	}
	return nil
}

// collectIssues flattens the validation error tree into leaf issues, which
// carry the specific failure messages.
func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if len(err.Causes) == 0 {
		return []ValidationIssue{{
			Location: err.InstanceLocation,
			Message:  err.Message,
		}}
	}

	var issues []ValidationIssue
	for _, cause := range err.Causes {
		issues = append(issues, collectIssues(cause)...)
	}
	return issues
}
