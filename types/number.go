package types

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-varset/varset"
)

// Numbers are confined to the signed 16-bit range.
const (
	NumberMin = -32768
	NumberMax = 32767
)

// Number is the codec for integer variables. Native value: int. Numbers
// have no unset form; empty text is invalid.
type Number struct{}

func (Number) Name() string { return "number" }

func (Number) StringSet(def *varset.Definition, text string) (varset.Value, varset.Result, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, varset.Invalid, fmt.Errorf("invalid number: %s", text)
	}
	if n < NumberMin || n > NumberMax {
		return nil, varset.Invalid, fmt.Errorf("number is out of range: %s", text)
	}
	return int(n), varset.Success, nil
}

func (Number) StringGet(def *varset.Definition, v varset.Value) (string, varset.Result, error) {
	if v == nil {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	n, ok := v.(int)
	if !ok {
		return "", varset.Internal, fmt.Errorf("number variable holds %T", v)
	}
	return strconv.Itoa(n), varset.Success, nil
}

func (Number) NativeSet(def *varset.Definition, v varset.Value) (varset.Value, varset.Result, error) {
	n, ok := v.(int)
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid number: %v", v)
	}
	if n < NumberMin || n > NumberMax {
		return nil, varset.Invalid, fmt.Errorf("number is out of range: %d", n)
	}
	return n, varset.Success, nil
}

func (Number) NativeGet(def *varset.Definition, v varset.Value) (varset.Value, error) {
	return v, nil
}

func (t Number) Reset(def *varset.Definition, initial string) (varset.Value, varset.Result, error) {
	return t.StringSet(def, initial)
}

func (Number) Destroy(v varset.Value) {}
