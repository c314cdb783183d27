// Package types provides the concrete value codecs for the settings
// registry: boolean, quad, number, string, path, regex and string list.
// Each codec implements the varset.Type contract and owns the native
// representation of its kind.
package types

import (
	"fmt"

	"github.com/goliatone/go-varset/varset"
)

// boolValues maps accepted tokens to their value. Rendering always uses the
// canonical "yes"/"no" pair.
var boolValues = map[string]bool{
	"yes": true, "no": false,
	"true": true, "false": false,
	"on": true, "off": false,
	"y": true, "n": false,
	"t": true, "f": false,
	"1": true, "0": false,
}

// Bool is the codec for boolean variables. Native value: bool.
type Bool struct{}

func (Bool) Name() string { return "boolean" }

func (Bool) StringSet(def *varset.Definition, text string) (varset.Value, varset.Result, error) {
	v, ok := boolValues[text]
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid boolean value: %s", text)
	}
	return v, varset.Success, nil
}

func (Bool) StringGet(def *varset.Definition, v varset.Value) (string, varset.Result, error) {
	if v == nil {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	b, ok := v.(bool)
	if !ok {
		return "", varset.Internal, fmt.Errorf("boolean variable holds %T", v)
	}
	if b {
		return "yes", varset.Success, nil
	}
	return "no", varset.Success, nil
}

func (Bool) NativeSet(def *varset.Definition, v varset.Value) (varset.Value, varset.Result, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid boolean value: %v", v)
	}
	return b, varset.Success, nil
}

func (Bool) NativeGet(def *varset.Definition, v varset.Value) (varset.Value, error) {
	return v, nil
}

func (t Bool) Reset(def *varset.Definition, initial string) (varset.Value, varset.Result, error) {
	return t.StringSet(def, initial)
}

func (Bool) Destroy(v varset.Value) {}

// ToggleBool flips a boolean item through the public protocol, so the
// validator runs and observers are notified. Fails with an internal error
// when the item is not boolean-typed.
func ToggleBool(s *varset.Set, name string) (varset.Result, error) {
	if s == nil {
		return varset.Internal, fmt.Errorf("no config set")
	}
	it := s.Lookup(name)
	if it == nil {
		return varset.Internal, fmt.Errorf("no such boolean variable: %s", name)
	}
	if it.Definition().Kind != varset.KindBool {
		return varset.Internal, fmt.Errorf("variable %s is not boolean-typed", name)
	}

	v, err := s.ItemNativeGet(it)
	if err != nil {
		return varset.Internal, err
	}
	cur, ok := v.(bool)
	if !ok {
		return varset.Invalid, fmt.Errorf("boolean variable %s holds %T", name, v)
	}
	return s.ItemNativeSet(it, !cur)
}
