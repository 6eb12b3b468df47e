package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Params maps query parameter names to values. A nil value or a nil pointer
// means "not set" and is dropped before the query string is built; an empty
// string is a value and fails request validation.
//
// Scalars are encoded once. Slices and arrays are encoded as repeated keys.
// time.Time values are encoded as calendar dates (YYYY-MM-DD).
type Params map[string]any

// Values encodes the set parameters as url.Values
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, val := range p {
		for _, s := range encodeParam(val) {
			values.Add(key, s)
		}
	}
	return values
}

func encodeParam(val any) []string {
	rv := reflect.ValueOf(val)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}

	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, encodeParam(rv.Index(i).Interface())...)
		}
		return out
	}

	return []string{encodeScalar(rv.Interface())}
}

func encodeScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.DateOnly)
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
