package varset

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
)

// NativeSnapshot returns every item's native value keyed by name. Values
// are borrowed handles, like NativeGet.
func (s *Set) NativeSnapshot() map[string]Value {
	out := make(map[string]Value, len(s.items))
	for name, it := range s.items {
		v, err := s.ItemNativeGet(it)
		if err != nil {
			continue
		}
		out[name] = v
	}
	return out
}

// Bind decodes the registry's native values into a caller struct, matching
// fields by the "varset" tag (variable name). Decoding is weakly typed, so
// numeric kinds fill ints and quads fill small integer fields.
//
// The target struct holds copies; later registry mutations do not affect it.
func Bind[T any](s *Set) (T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "varset",
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, errors.Wrap(err, errors.CategoryOperation, "failed to build settings decoder").
			WithTextCode("BIND_DECODER_FAILED")
	}

	if err := decoder.Decode(s.NativeSnapshot()); err != nil {
		return out, errors.Wrap(err, errors.CategoryOperation, "failed to bind settings").
			WithTextCode("BIND_DECODE_FAILED")
	}
	return out, nil
}
