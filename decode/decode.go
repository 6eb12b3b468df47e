package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// Decode converts one parsed JSON object into a record of type T. The keys of
// raw are expected in the API's camelCase form.
func Decode[T any](raw any) (T, error) {
	var zero T

	m, ok := raw.(map[string]any)
	if !ok {
		return zero, &ShapeMismatchError{
			Record: reflect.TypeFor[T]().Name(),
			Reason: fmt.Sprintf("expected a JSON object, got %T", raw),
		}
	}

	return Record[T](Decamelize(m))
}

// Record fills a record of type T from an already decamelized mapping.
func Record[T any](m map[string]any) (T, error) {
	var out T

	schema, err := SchemaOf[T]()
	if err != nil {
		return out, err
	}

	if len(schema.Fields) > 0 && !overlaps(schema, m) {
		return out, &ShapeMismatchError{
			Record: schema.Record,
			Reason: "object has none of the record's fields",
		}
	}

	input := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		v, ok := m[f.Name]
		if !ok || v == nil {
			if f.Required {
				return out, &ShapeMismatchError{
					Record: schema.Record,
					Field:  f.Name,
					Reason: "required field is missing",
				}
			}
			continue
		}
		input[f.Name] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    tagName,
		DecodeHook: numberHook,
		Result:     &out,
	})
	if err != nil {
		return out, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(input); err != nil {
		return out, &ShapeMismatchError{
			Record: schema.Record,
			Reason: err.Error(),
			Err:    err,
		}
	}

	return out, nil
}

// Fields flattens a decoded record into its snake_case mapping. Absent
// optional fields map to nil and pointers are dereferenced.
func Fields(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil record", ErrInvalidSchema)
		}
		rv = rv.Elem()
	}

	schema, err := schemaFor(rv.Type())
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		fv := rv.FieldByIndex(f.index)
		switch {
		case !nillable(fv.Type()):
			out[f.Name] = fv.Interface()
		case fv.IsNil():
			out[f.Name] = nil
		case fv.Kind() == reflect.Pointer:
			out[f.Name] = fv.Elem().Interface()
		default:
			out[f.Name] = fv.Interface()
		}
	}

	return out, nil
}

func overlaps(s *Schema, m map[string]any) bool {
	for k := range m {
		if _, ok := s.byName[k]; ok {
			return true
		}
	}
	return false
}

var numberType = reflect.TypeFor[json.Number]()

// numberHook converts json.Number values into the numeric kind of the target
// field. Integral decimals such as 226.0 are accepted for integer fields;
// values out of the field's range and numbers sent for string fields fail.
func numberHook(from, to reflect.Type, data any) (any, error) {
	if from != numberType {
		return data, nil
	}
	n := data.(json.Number)

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := n.Int64()
		if err != nil {
			f, err := integral(n)
			if err != nil {
				return nil, err
			}
			if f < math.MinInt64 || f >= math.MaxInt64 {
				return nil, fmt.Errorf("%s overflows %s", n, to)
			}
			i = int64(f)
		}
		if reflect.New(to).Elem().OverflowInt(i) {
			return nil, fmt.Errorf("%s overflows %s", n, to)
		}
		return i, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			f, err := integral(n)
			if err != nil {
				return nil, err
			}
			if f < 0 {
				return nil, fmt.Errorf("%s is negative", n)
			}
			if f >= math.MaxUint64 {
				return nil, fmt.Errorf("%s overflows %s", n, to)
			}
			u = uint64(f)
		}
		if reflect.New(to).Elem().OverflowUint(u) {
			return nil, fmt.Errorf("%s overflows %s", n, to)
		}
		return u, nil
	case reflect.Float32, reflect.Float64:
		return n.Float64()
	case reflect.String:
		return nil, fmt.Errorf("number %s is not a string", n)
	}

	return data, nil
}

func integral(n json.Number) (float64, error) {
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not a whole number", n)
	}
	return f, nil
}
