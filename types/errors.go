package types

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/fatih/structs"
)

// SerializeError wraps a failure into the error envelope. Object shaped data
// is kept with its JSON serializable fields only, and its message, if any, is
// appended to msg.
func SerializeError(msg string, data interface{}) *SnapResponse {
	obj := serializeObject(data)
	if m, ok := obj["message"].(string); ok {
		msg = msg + " - " + m
	}

	return &SnapResponse{
		Error: &SnapError{
			Message: msg,
			Data:    obj,
		},
	}
}

func serializeObject(data interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}
	if rv := reflect.ValueOf(data); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}

	var fields map[string]interface{}
	switch v := data.(type) {
	case error:
		fields = objectFields(v)
		if fields == nil {
			fields = make(map[string]interface{}, 1)
		}
		if _, ok := fields["message"]; !ok {
			fields["message"] = v.Error()
		}
	case json.RawMessage:
		if err := json.Unmarshal(v, &fields); err != nil {
			return nil
		}
	default:
		fields = objectFields(v)
	}
	if fields == nil {
		return nil
	}

	out := make(map[string]interface{}, len(fields))
	for key, val := range fields {
		if jv, ok := jsonValue(val); ok {
			out[key] = jv
		}
	}
	return out
}

// objectFields returns the own fields of structs and string keyed maps, nil
// for everything else. Struct fields are keyed by their json name.
func objectFields(v interface{}) map[string]interface{} {
	if structs.IsStruct(v) {
		out := make(map[string]interface{})
		for _, field := range structs.New(v).Fields() {
			if !field.IsExported() {
				continue
			}
			name := strings.Split(field.Tag("json"), ",")[0]
			if name == "-" {
				continue
			}
			if len(name) == 0 {
				name = field.Name()
			}
			out[name] = field.Value()
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil
	}
	out := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

// jsonValue returns v as it reads back from its JSON encoding, false when v
// can not be encoded.
func jsonValue(v interface{}) (interface{}, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return out, true
}
