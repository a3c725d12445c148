// Package schema checks untyped JSON payloads against JSON schemas and decodes
// the ones that pass into typed values.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/xerrors"
)

// Issue is a single schema violation.
type Issue struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ValidationError is returned for any payload that does not match its schema.
type ValidationError struct {
	Message string  `json:"message"`
	Issues  []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for checks done outside of a
// schema, like address parsing.
func NewValidationError(path, format string, args ...interface{}) *ValidationError {
	msg := fmt.Sprintf(format, args...)
	return &ValidationError{
		Message: path + ": " + msg,
		Issues:  []Issue{{Path: path, Type: "invalid", Message: msg}},
	}
}

type Validator struct {
	schema *gojsonschema.Schema
}

// New compiles a draft-07 JSON schema.
func New(schemaJSON string) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, xerrors.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

func MustNew(schemaJSON string) *Validator {
	v, err := New(schemaJSON)
	if err != nil {
		panic(err)
	}
	return v
}

// Reflect derives a schema from a Go value using its json tags. Fields without
// omitempty are required, unknown properties are allowed.
func Reflect(v interface{}) (*Validator, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		ExpandedStruct:            true,
	}
	s := r.Reflect(v)
	// gojsonschema only knows drafts up to 07
	s.Version = ""
	s.ID = ""

	b, err := json.Marshal(s)
	if err != nil {
		return nil, xerrors.Errorf("marshal reflected schema: %w", err)
	}
	return New(string(b))
}

func MustReflect(v interface{}) *Validator {
	val, err := Reflect(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Validate checks raw against the schema. A nil error means the payload is
// valid, otherwise the error is a *ValidationError.
func (v *Validator) Validate(raw []byte) error {
	if len(raw) == 0 {
		raw = []byte("null")
	}
	res, err := v.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{
			Message: fmt.Sprintf("malformed json: %v", err),
			Issues:  []Issue{{Path: "(root)", Type: "invalid_json", Message: err.Error()}},
		}
	}
	if res.Valid() {
		return nil
	}

	issues := make([]Issue, 0, len(res.Errors()))
	msgs := make([]string, 0, len(res.Errors()))
	for _, re := range res.Errors() {
		issues = append(issues, Issue{
			Path:    re.Field(),
			Type:    re.Type(),
			Message: re.Description(),
		})
		msgs = append(msgs, re.Field()+": "+re.Description())
	}
	return &ValidationError{
		Message: strings.Join(msgs, "; "),
		Issues:  issues,
	}
}

// Parse validates raw and decodes it into out.
func (v *Validator) Parse(raw []byte, out interface{}) error {
	if err := v.Validate(raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ValidationError{
			Message: fmt.Sprintf("decode: %v", err),
			Issues:  []Issue{{Path: "(root)", Type: "decode", Message: err.Error()}},
		}
	}
	return nil
}
