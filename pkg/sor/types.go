// Package sor generates synthetic Schema-on-Read (SoR) data files.
//
// A SoR file is line oriented. Every line holds one bracket-wrapped field
// per schema column, concatenated with no separator:
//
//	<3.141><abc><-42><1>
//
// All generation draws from an explicitly passed *rand.Rand, so a fixed seed
// always produces the same file.
package sor

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Type identifies the value domain of a column
type Type int

const (
	TypeMissing Type = iota - 1
	TypeBool
	TypeInt
	TypeFloat
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeMissing:
		return "MISSING"
	case TypeBool:
		return "BOOL"
	case TypeInt:
		return "INT"
	case TypeFloat:
		return "FLOAT"
	case TypeString:
		return "STRING"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// FieldType is a column type the generator can produce values for.
// The set is closed: MISSING is a valid Type but has no FieldType.
type FieldType interface {
	Type() Type
	appendValue(dst []byte, r *rand.Rand) []byte
}

// The generatable field types
var (
	Bool   FieldType = boolField{}
	Int    FieldType = intField{}
	Float  FieldType = floatField{}
	String FieldType = stringField{}
)

// FieldTypeOf returns the field type for t, or ErrUnsupportedType when t
// cannot be generated.
func FieldTypeOf(t Type) (FieldType, error) {
	switch t {
	case TypeBool:
		return Bool, nil
	case TypeInt:
		return Int, nil
	case TypeFloat:
		return Float, nil
	case TypeString:
		return String, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// Schema is the ordered list of column types of every generated row
type Schema []FieldType

// NewSchema builds a schema from type tags
func NewSchema(types ...Type) (Schema, error) {
	schema := make(Schema, 0, len(types))
	for i, t := range types {
		ft, err := FieldTypeOf(t)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		schema = append(schema, ft)
	}
	return schema, nil
}

// Types returns the type tag of each column
func (s Schema) Types() []Type {
	types := make([]Type, len(s))
	for i, ft := range s {
		types[i] = ft.Type()
	}
	return types
}

func (s Schema) String() string {
	names := make([]string, len(s))
	for i, ft := range s {
		names[i] = ft.Type().String()
	}
	return strings.Join(names, ",")
}
