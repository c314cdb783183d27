package types

import (
	"fmt"

	"github.com/goliatone/go-varset/varset"
)

// String is the codec for plain string variables. Native value: string.
// Empty text means unset, unless the definition carries NotEmpty.
type String struct{}

func (String) Name() string { return "string" }

func (String) StringSet(def *varset.Definition, text string) (varset.Value, varset.Result, error) {
	if text == "" {
		if def.Flags&varset.NotEmpty != 0 {
			return nil, varset.Invalid, fmt.Errorf("%s cannot be empty", def.Name)
		}
		return nil, varset.Success | varset.FlagEmpty, nil
	}
	return text, varset.Success, nil
}

func (String) StringGet(def *varset.Definition, v varset.Value) (string, varset.Result, error) {
	if v == nil {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", varset.Internal, fmt.Errorf("string variable holds %T", v)
	}
	return s, varset.Success, nil
}

func (t String) NativeSet(def *varset.Definition, v varset.Value) (varset.Value, varset.Result, error) {
	if v == nil {
		if def.Flags&varset.NotEmpty != 0 {
			return nil, varset.Invalid, fmt.Errorf("%s cannot be empty", def.Name)
		}
		return nil, varset.Success | varset.FlagEmpty, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid string value: %v", v)
	}
	return t.StringSet(def, s)
}

func (String) NativeGet(def *varset.Definition, v varset.Value) (varset.Value, error) {
	return v, nil
}

func (t String) Reset(def *varset.Definition, initial string) (varset.Value, varset.Result, error) {
	return t.StringSet(def, initial)
}

func (String) Destroy(v varset.Value) {}
