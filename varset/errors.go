package varset

import (
	"github.com/goliatone/go-errors"
)

// Text codes attached to protocol errors, so callers can branch on failure
// class without string matching.
const (
	codeUnknownVariable = "UNKNOWN_VARIABLE"
	codeInvalidValue    = "INVALID_VALUE"
	codeValidator       = "VALIDATOR_REJECTED"
	codeInternal        = "INTERNAL_ERROR"
	codeDuplicate       = "DUPLICATE_REGISTRATION"
)

func errUnknownVariable(name string) error {
	return errors.New("unknown variable", errors.CategoryBadInput).
		WithTextCode(codeUnknownVariable).
		WithMetadata(map[string]any{"variable": name})
}

func errInvalidValue(name string, err error) error {
	return errors.Wrap(err, errors.CategoryValidation, "invalid value").
		WithTextCode(codeInvalidValue).
		WithMetadata(map[string]any{"variable": name})
}

func errValidatorRejected(name string, err error) error {
	return errors.Wrap(err, errors.CategoryValidation, "validator rejected value").
		WithTextCode(codeValidator).
		WithMetadata(map[string]any{"variable": name})
}

func errInternal(msg string, meta map[string]any) error {
	return errors.New(msg, errors.CategoryOperation).
		WithTextCode(codeInternal).
		WithMetadata(meta)
}

func errDuplicate(what, name string) error {
	return errors.New(what+" already registered", errors.CategoryBadInput).
		WithTextCode(codeDuplicate).
		WithMetadata(map[string]any{"name": name})
}
