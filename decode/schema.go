package decode

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// tagName is the struct tag that declares a record field
const tagName = "rated"

// Kind is the semantic type of a record field
type Kind int

const (
	// KindUnknown is never produced for a valid schema
	KindUnknown Kind = iota
	// KindInt is a whole number
	KindInt
	// KindFloat is a decimal number
	KindFloat
	// KindString is a string, including ISO-8601 timestamps
	KindString
	// KindBool is a boolean
	KindBool
	// KindList is an array of scalars
	KindList
	// KindBlob is nested data consumed as-is (objects, arrays of objects)
	KindBlob
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// Field is one declared field of a record shape
type Field struct {
	Name     string
	Required bool
	Kind     Kind

	index []int
}

// Schema is the declared shape of a record type
type Schema struct {
	Record string
	Fields []Field

	byName map[string]int
}

// Field looks up a field by its snake_case name
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

var schemas sync.Map // reflect.Type -> *Schema

// SchemaOf returns the schema declared by the struct type T
func SchemaOf[T any]() (*Schema, error) {
	return schemaFor(reflect.TypeFor[T]())
}

func schemaFor(t reflect.Type) (*Schema, error) {
	if cached, ok := schemas.Load(t); ok {
		return cached.(*Schema), nil
	}

	s, err := buildSchema(t)
	if err != nil {
		return nil, err
	}

	actual, _ := schemas.LoadOrStore(t, s)
	return actual.(*Schema), nil
}

func buildSchema(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidSchema, t)
	}

	s := &Schema{
		Record: t.Name(),
		byName: make(map[string]int),
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			return nil, fmt.Errorf("%w: %s.%s has an empty name", ErrInvalidSchema, t.Name(), sf.Name)
		}
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("%w: %s declares %q twice", ErrInvalidSchema, t.Name(), name)
		}

		required := opts == "required"
		// required lists and blobs stay slices or maps; only scalars are pointers
		if required && sf.Type.Kind() == reflect.Pointer {
			return nil, fmt.Errorf("%w: required field %s.%s must not be a pointer", ErrInvalidSchema, t.Name(), sf.Name)
		}
		if !required && !nillable(sf.Type) {
			return nil, fmt.Errorf("%w: optional field %s.%s must be nillable", ErrInvalidSchema, t.Name(), sf.Name)
		}

		kind := kindOf(sf.Type)
		if kind == KindUnknown {
			return nil, fmt.Errorf("%w: %s.%s has unsupported type %s", ErrInvalidSchema, t.Name(), sf.Name, sf.Type)
		}

		s.byName[name] = len(s.Fields)
		s.Fields = append(s.Fields, Field{
			Name:     name,
			Required: required,
			Kind:     kind,
			index:    sf.Index,
		})
	}

	return s, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

func kindOf(t reflect.Type) Kind {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.Map, reflect.Interface, reflect.Struct, reflect.Slice:
			return KindBlob
		}
		return KindList
	case reflect.Map, reflect.Interface:
		return KindBlob
	}

	return KindUnknown
}
