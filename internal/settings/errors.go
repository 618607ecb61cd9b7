package settings

import (
	"errors"
	"fmt"
)

// ErrSettingNotFound is returned when no setting matches a name.
var ErrSettingNotFound = errors.New("setting not found")

// ErrOutOfRange is matched by RangeError and ParseError through errors.Is.
var ErrOutOfRange = errors.New("value out of range")

// ParseError is returned when text is not a number of the setting's type.
type ParseError struct {
	Name string
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid value %q", e.Name, e.Text)
}

// Is lets a ParseError match ErrOutOfRange: the console reports both the
// same way.
func (e *ParseError) Is(target error) bool {
	return target == ErrOutOfRange
}

// RangeError is returned when a parsed value falls outside the setting's
// inclusive bounds.
type RangeError struct {
	Name string
	Text string
	Min  int32
	Max  int32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %q outside [%d, %d]", e.Name, e.Text, e.Min, e.Max)
}

// Is implements errors.Is support.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
