package config

import (
	"fmt"
)

type paramValue interface {
	value() interface{}
}

// StringVal represents a string param value
type StringVal struct {
	val string
}

// NewStringVal creates a string value instance.
// Avoid using directly for anything other than unit testing
func NewStringVal(initialValue string) StringVal {
	return StringVal{val: initialValue}
}

// Value returns underlying value of a given param
func (val StringVal) Value() string {
	return val.val
}

func (val StringVal) value() interface{} {
	return val.val
}

// IntVal represents an int param value
type IntVal struct {
	val int
}

// NewIntVal creates an int value instance.
// Avoid using directly for anything other than unit testing
func NewIntVal(initialValue int) IntVal {
	return IntVal{val: initialValue}
}

// Value returns underlying value of a given param
func (val IntVal) Value() int {
	return val.val
}

func (val IntVal) value() interface{} {
	return val.val
}

func newParamValue(raw interface{}) (paramValue, error) {
	switch typed := raw.(type) {
	case string:
		return NewStringVal(typed), nil
	case int:
		return NewIntVal(typed), nil
	case float64:
		// JSON numbers decode as float64
		return NewIntVal(int(typed)), nil
	default:
		return nil, fmt.Errorf("Unsupported param value: %v(%[1]T)", raw)
	}
}
