package types

import (
	"fmt"
	"strings"

	"github.com/mitchellh/copystructure"

	"github.com/goliatone/go-varset/varset"
)

// Slice is the codec for string-list variables. Native value: []string.
// The separator comes from the definition's flags (colon by default, the
// search-path convention). Empty text means an unset list.
type Slice struct{}

func (Slice) Name() string { return "slist" }

func (Slice) StringSet(def *varset.Definition, text string) (varset.Value, varset.Result, error) {
	if text == "" {
		return nil, varset.Success | varset.FlagEmpty, nil
	}

	sep := def.Separator()
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, varset.Success | varset.FlagEmpty, nil
	}
	return out, varset.Success, nil
}

func (Slice) StringGet(def *varset.Definition, v varset.Value) (string, varset.Result, error) {
	if v == nil {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	list, ok := v.([]string)
	if !ok {
		return "", varset.Internal, fmt.Errorf("list variable holds %T", v)
	}
	if len(list) == 0 {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	return strings.Join(list, def.Separator()), varset.Success, nil
}

func (Slice) NativeSet(def *varset.Definition, v varset.Value) (varset.Value, varset.Result, error) {
	if v == nil {
		return nil, varset.Success | varset.FlagEmpty, nil
	}
	list, ok := v.([]string)
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid list value: %v", v)
	}
	if len(list) == 0 {
		return nil, varset.Success | varset.FlagEmpty, nil
	}

	copied, err := copystructure.Copy(list)
	if err != nil {
		return nil, varset.Invalid, fmt.Errorf("failed to copy list value: %w", err)
	}
	return copied.([]string), varset.Success, nil
}

func (Slice) NativeGet(def *varset.Definition, v varset.Value) (varset.Value, error) {
	return v, nil
}

func (t Slice) Reset(def *varset.Definition, initial string) (varset.Value, varset.Result, error) {
	return t.StringSet(def, initial)
}

func (Slice) Destroy(v varset.Value) {}
