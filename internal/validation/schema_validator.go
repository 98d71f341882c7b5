package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"gopkg.in/yaml.v3"
)

// Bundled schema names
const (
	UpgradeRulesSchema = "upgrade_rules.schema.json"
)

//go:embed schemas/*.json
var bundled embed.FS

// SchemaValidator validates documents against the bundled JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
	ValidateYAML(data []byte, schemaName string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes validates JSON data bytes against a bundled schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateYAML validates a YAML document. An empty document validates as an
// empty object.
func (v *validator) ValidateYAML(data []byte, schemaName string) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML data: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	asJSON, err := json.Marshal(normalizeKeys(doc))
	if err != nil {
		return fmt.Errorf("failed to convert YAML data: %w", err)
	}
	return v.ValidateBytes(asJSON, schemaName)
}

// normalizeKeys turns the non-string mapping keys YAML allows (such as the
// integer levels of chance_overrides) into strings so the document is JSON.
func normalizeKeys(node interface{}) interface{} {
	switch n := node.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(n))
		for k, val := range n {
			out[k] = normalizeKeys(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(n))
		for k, val := range n {
			out[fmt.Sprint(k)] = normalizeKeys(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(n))
		for i, val := range n {
			out[i] = normalizeKeys(val)
		}
		return out
	default:
		return node
	}
}

// loadSchema compiles a bundled schema, caching the result
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := bundled.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema: %w", err)
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, nil, "", &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors walks the tree down to its leaves. A property name is
// validated as a detached instance, so its failure carries no instance
// location; the owning object is recovered from the keyword's schema URL.
func collectErrors(err *jsonschema.ValidationError, scope []string, propName string, lines *[]string) {
	location := err.InstanceLocation
	if pn, ok := err.ErrorKind.(*kind.PropertyNames); ok {
		propName = pn.Property
		if len(location) == 0 {
			location = ownerLocation(err.SchemaURL)
		}
	}
	if len(location) < len(scope) {
		location = scope
	}

	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(location, propName, err.ErrorKind))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, location, propName, lines)
	}
}

// ownerLocation maps a keyword URL such as
// ".../upgrade_rules.schema.json#/properties/chance_overrides/propertyNames"
// to the instance path of the object it applies to.
func ownerLocation(schemaURL string) []string {
	_, fragment, ok := strings.Cut(schemaURL, "#")
	if !ok {
		return nil
	}
	tokens := strings.Split(strings.TrimPrefix(fragment, "/"), "/")

	var location []string
	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i] == "properties" {
			location = append(location, unescapePointer(tokens[i+1]))
			i++
		}
	}
	return location
}

func unescapePointer(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
}

// formatError renders a leaf failure as "at /starter/sigils: minimum validation failed"
// or, for a bad key, `at /chance_overrides: property name "0": pattern validation failed`
func formatError(location []string, propName string, errKind jsonschema.ErrorKind) string {
	at := "(root)"
	if len(location) > 0 {
		at = "/" + strings.Join(location, "/")
	}
	if propName != "" {
		at += fmt.Sprintf(": property name %q", propName)
	}

	if errKind != nil {
		if kw := errKind.KeywordPath(); len(kw) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", at, strings.Join(kw, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", at)
}
