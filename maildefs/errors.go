package maildefs

import (
	"github.com/goliatone/go-errors"
)

func errBelowOne(name string) error {
	return errors.New("value must be at least 1", errors.CategoryValidation).
		WithTextCode("VALUE_BELOW_MINIMUM").
		WithMetadata(map[string]any{"variable": name})
}
