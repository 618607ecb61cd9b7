// Package settings provides the typed value registry behind the console's
// set command.
//
// A Setting binds a case-insensitive name to one field of a live
// configuration structure together with its storage type and an inclusive
// bound pair. The binding is established once, when the registry is built,
// and the registry never copies the field: reads and writes go straight to
// the bound location.
package settings

import (
	"fmt"
	"strconv"

	"github.com/dshills/fcconsole/internal/numparse"
)

// Type is the storage type of a setting. It fixes the bit width and
// signedness used to read and write the bound field.
type Type uint8

const (
	// TypeUint8 is an unsigned 8-bit field.
	TypeUint8 Type = iota
	// TypeUint16 is an unsigned 16-bit field.
	TypeUint16
	// TypeUint32 is an unsigned 32-bit field.
	TypeUint32
	// TypeInt8 is a signed 8-bit field.
	TypeInt8
	// TypeInt16 is a signed 16-bit field.
	TypeInt16
	// TypeInt32 is a signed 32-bit field.
	TypeInt32
	// TypeFloat32 is a single precision floating point field.
	TypeFloat32
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// Signed reports whether the type is a signed integer.
func (t Type) Signed() bool {
	return t == TypeInt8 || t == TypeInt16 || t == TypeInt32
}

// Unsigned reports whether the type is an unsigned integer.
func (t Type) Unsigned() bool {
	return t == TypeUint8 || t == TypeUint16 || t == TypeUint32
}

// FloatDigits is the number of fractional digits used when rendering
// float values.
const FloatDigits = 7

// Value is a tagged union holding one setting value. Integer types use Int
// (unsigned values are zero-extended), TypeFloat32 uses Float.
type Value struct {
	Type  Type
	Int   int64
	Float float32
}

// String renders the value the way the console prints it.
func (v Value) String() string {
	if v.Type == TypeFloat32 {
		return FormatFloat(v.Float)
	}
	return strconv.FormatInt(v.Int, 10)
}

// FormatFloat renders f in fixed point with FloatDigits fractional digits.
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', FloatDigits, 32)
}

// Number is the set of Go types a setting can be bound to.
type Number interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32 | ~float32
}

// accessor reads and writes one bound field.
type accessor interface {
	load() Value
	store(v Value)
}

// field is the accessor for a field of Go type T. T and typ always agree:
// typ is derived from T by Bind.
type field[T Number] struct {
	ptr *T
	typ Type
}

func (f field[T]) load() Value {
	if f.typ == TypeFloat32 {
		return Value{Type: f.typ, Float: float32(*f.ptr)}
	}
	return Value{Type: f.typ, Int: int64(*f.ptr)}
}

// store narrows v into the field. Integer narrowing keeps the low bits.
func (f field[T]) store(v Value) {
	if f.typ == TypeFloat32 {
		*f.ptr = T(v.Float)
		return
	}
	*f.ptr = T(v.Int)
}

// typeOf maps a bound pointer to its storage type.
func typeOf(ptr any) (Type, bool) {
	switch ptr.(type) {
	case *uint8:
		return TypeUint8, true
	case *uint16:
		return TypeUint16, true
	case *uint32:
		return TypeUint32, true
	case *int8:
		return TypeInt8, true
	case *int16:
		return TypeInt16, true
	case *int32:
		return TypeInt32, true
	case *float32:
		return TypeFloat32, true
	default:
		return 0, false
	}
}

// Setting describes one named configuration value.
type Setting struct {
	// Name is the case-insensitive lookup key.
	Name string

	// Type is the storage type of the bound field.
	Type Type

	// Min and Max are the inclusive bounds. When both are zero no bound
	// is enforced.
	Min int32
	Max int32

	ref accessor
}

// Bind creates a setting bound to ptr. The storage type is taken from the
// Go type of ptr, so a descriptor can never disagree with its field.
// Named types (type Foo uint8) must be bound through a pointer to their
// underlying type.
func Bind[T Number](name string, ptr *T, min, max int32) Setting {
	if ptr == nil {
		panic(fmt.Sprintf("settings: %s bound to nil pointer", name))
	}
	typ, ok := typeOf(any(ptr))
	if !ok {
		panic(fmt.Sprintf("settings: %s bound to unsupported type %T", name, ptr))
	}
	return Setting{
		Name: name,
		Type: typ,
		Min:  min,
		Max:  max,
		ref:  field[T]{ptr: ptr, typ: typ},
	}
}

// Bounded reports whether the bound pair is enforced.
func (s *Setting) Bounded() bool {
	return s.Min != 0 || s.Max != 0
}

// Get returns the current value of the bound field.
func (s *Setting) Get() Value {
	return s.ref.load()
}

// String renders the current value.
func (s *Setting) String() string {
	return s.Get().String()
}

// Format renders the current value, followed by " <min> <max>" when
// withBounds is set.
func (s *Setting) Format(withBounds bool) string {
	out := s.String()
	if withBounds {
		out += fmt.Sprintf(" %d %d", s.Min, s.Max)
	}
	return out
}

// Parse converts text into a value of the setting's type without storing
// it. Integer text follows numparse.ParseInt / ParseUint, float text follows
// numparse.ParseFloat. Bounds are checked when enforced.
func (s *Setting) Parse(text string) (Value, error) {
	switch {
	case s.Type.Signed():
		n, ok := numparse.ParseInt(text)
		if !ok {
			return Value{}, &ParseError{Name: s.Name, Text: text}
		}
		if s.Bounded() && (n < s.Min || n > s.Max) {
			return Value{}, &RangeError{Name: s.Name, Text: text, Min: s.Min, Max: s.Max}
		}
		return Value{Type: s.Type, Int: int64(n)}, nil

	case s.Type.Unsigned():
		n, ok := numparse.ParseUint(text)
		if !ok {
			return Value{}, &ParseError{Name: s.Name, Text: text}
		}
		if s.Bounded() && (n < uint32(s.Min) || n > uint32(s.Max)) {
			return Value{}, &RangeError{Name: s.Name, Text: text, Min: s.Min, Max: s.Max}
		}
		return Value{Type: s.Type, Int: int64(n)}, nil

	default:
		f := numparse.ParseFloat(text)
		if s.Bounded() && (f < float32(s.Min) || f > float32(s.Max)) {
			return Value{}, &RangeError{Name: s.Name, Text: text, Min: s.Min, Max: s.Max}
		}
		return Value{Type: s.Type, Float: f}, nil
	}
}

// Set parses text and, if it is valid and within bounds, writes it into the
// bound field. On error the field is left unchanged.
func (s *Setting) Set(text string) error {
	v, err := s.Parse(text)
	if err != nil {
		return err
	}
	s.ref.store(v)
	return nil
}
