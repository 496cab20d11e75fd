package engine

import (
	"github.com/flagkit/flagkit/pkg/identity"
	"github.com/flagkit/flagkit/pkg/target"
)

// Bool evaluates the feature and asserts a bool value.
func (e *Engine) Bool(id identity.FeatureIdentity, ctx target.Context) (bool, error) {
	result, err := e.Evaluate(id, ctx)
	if err != nil {
		return false, err
	}
	v, ok := result.Value.(bool)
	if !ok {
		return false, &ValueTypeError{Feature: id, Expected: "bool", Actual: result.Value}
	}
	return v, nil
}

// String evaluates the feature and asserts a string value.
func (e *Engine) String(id identity.FeatureIdentity, ctx target.Context) (string, error) {
	result, err := e.Evaluate(id, ctx)
	if err != nil {
		return "", err
	}
	v, ok := result.Value.(string)
	if !ok {
		return "", &ValueTypeError{Feature: id, Expected: "string", Actual: result.Value}
	}
	return v, nil
}

// Int evaluates the feature and asserts an integer value. Values decoded
// from wire configurations arrive as int64.
func (e *Engine) Int(id identity.FeatureIdentity, ctx target.Context) (int64, error) {
	result, err := e.Evaluate(id, ctx)
	if err != nil {
		return 0, err
	}
	switch v := result.Value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, &ValueTypeError{Feature: id, Expected: "int", Actual: result.Value}
	}
}

// Float evaluates the feature and asserts a float64 value.
func (e *Engine) Float(id identity.FeatureIdentity, ctx target.Context) (float64, error) {
	result, err := e.Evaluate(id, ctx)
	if err != nil {
		return 0, err
	}
	v, ok := result.Value.(float64)
	if !ok {
		return 0, &ValueTypeError{Feature: id, Expected: "float", Actual: result.Value}
	}
	return v, nil
}
