package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointSchema = `{
	"type": "object",
	"properties": {
		"x": {"type": "integer"},
		"y": {"type": "integer"}
	},
	"required": ["x", "y"]
}`

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type labeled struct {
	Name  string `json:"name" jsonschema:"enum=a,enum=b"`
	Point point  `json:"point"`
	Note  string `json:"note,omitempty"`
}

func TestValidatorParse(t *testing.T) {
	v := MustNew(pointSchema)

	var p point
	require.NoError(t, v.Parse([]byte(`{"x":1,"y":2}`), &p))
	assert.Equal(t, point{X: 1, Y: 2}, p)

	err := v.Parse([]byte(`{"x":1}`), &p)
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "required", verr.Issues[0].Type)
	assert.Contains(t, verr.Message, "y")
}

func TestValidatorMalformed(t *testing.T) {
	v := MustNew(pointSchema)

	for _, raw := range [][]byte{nil, []byte(`null`), []byte(`{"x":`), []byte(`42`)} {
		err := v.Validate(raw)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), string(raw))
		assert.NotEmpty(t, verr.Issues)
	}
}

func TestReflect(t *testing.T) {
	v, err := Reflect(&labeled{})
	require.NoError(t, err)

	assert.NoError(t, v.Validate([]byte(`{"name":"a","point":{"x":1,"y":2}}`)))
	assert.NoError(t, v.Validate([]byte(`{"name":"b","point":{"x":1,"y":2},"note":"n","extra":true}`)))

	assert.Error(t, v.Validate([]byte(`{"name":"c","point":{"x":1,"y":2}}`)))
	assert.Error(t, v.Validate([]byte(`{"name":"a"}`)))
	assert.Error(t, v.Validate([]byte(`{"name":"a","point":{"x":"1","y":2}}`)))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("message.to", "unknown address protocol %d", 9)
	assert.Equal(t, "message.to: unknown address protocol 9", err.Error())
	assert.Equal(t, []Issue{{Path: "message.to", Type: "invalid", Message: "unknown address protocol 9"}}, err.Issues)
}
