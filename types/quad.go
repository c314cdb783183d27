package types

import (
	"fmt"

	"github.com/goliatone/go-varset/varset"
)

// QuadValue is a four-state answer: an outright yes/no, or a default for a
// prompt the client will show. Stored as a small integer 0–3.
type QuadValue uint8

const (
	QuadNo QuadValue = iota
	QuadYes
	QuadAskNo
	QuadAskYes
)

// quadTokens are the only accepted spellings, index by value.
var quadTokens = [...]string{"no", "yes", "ask-no", "ask-yes"}

// quadToggled flips within the ask/non-ask pairing: no↔yes, ask-no↔ask-yes.
var quadToggled = [...]QuadValue{QuadYes, QuadNo, QuadAskYes, QuadAskNo}

// Valid reports whether the value is one of the four states.
func (q QuadValue) Valid() bool {
	return q <= QuadAskYes
}

// String renders the canonical token, or "invalid" when out of range.
func (q QuadValue) String() string {
	if !q.Valid() {
		return "invalid"
	}
	return quadTokens[q]
}

// Toggle returns the paired state: no↔yes, ask-no↔ask-yes.
func (q QuadValue) Toggle() QuadValue {
	return quadToggled[q]
}

// IsAsk reports whether the state means "prompt the user".
func (q QuadValue) IsAsk() bool {
	return q == QuadAskNo || q == QuadAskYes
}

// Answer returns the yes/no half of the state, the answer a prompt would
// default to.
func (q QuadValue) Answer() bool {
	return q == QuadYes || q == QuadAskYes
}

// Quad is the codec for quad variables. Native value: QuadValue. Quads have
// no unset form; empty text is invalid.
type Quad struct{}

func (Quad) Name() string { return "quad" }

func (Quad) StringSet(def *varset.Definition, text string) (varset.Value, varset.Result, error) {
	for i, tok := range quadTokens {
		if text == tok {
			return QuadValue(i), varset.Success, nil
		}
	}
	return nil, varset.Invalid, fmt.Errorf("invalid quad value: %s", text)
}

func (Quad) StringGet(def *varset.Definition, v varset.Value) (string, varset.Result, error) {
	if v == nil {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	q, ok := v.(QuadValue)
	if !ok || !q.Valid() {
		return "", varset.Internal, fmt.Errorf("quad variable holds invalid value %v", v)
	}
	return quadTokens[q], varset.Success, nil
}

func (Quad) NativeSet(def *varset.Definition, v varset.Value) (varset.Value, varset.Result, error) {
	q, ok := toQuad(v)
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid quad value: %v", v)
	}
	return q, varset.Success, nil
}

func (Quad) NativeGet(def *varset.Definition, v varset.Value) (varset.Value, error) {
	return v, nil
}

func (t Quad) Reset(def *varset.Definition, initial string) (varset.Value, varset.Result, error) {
	return t.StringSet(def, initial)
}

func (Quad) Destroy(v varset.Value) {}

// toQuad accepts a QuadValue or a plain integer in range.
func toQuad(v varset.Value) (QuadValue, bool) {
	switch q := v.(type) {
	case QuadValue:
		return q, q.Valid()
	case int:
		if q >= 0 && q <= int(QuadAskYes) {
			return QuadValue(q), true
		}
	}
	return 0, false
}

// ToggleQuad cycles a quad item through its paired state via the public
// protocol, so the validator runs and observers are notified. Toggling is a
// closed 4-cycle: the {no,yes} and {ask-no,ask-yes} pairs never cross.
func ToggleQuad(s *varset.Set, name string) (varset.Result, error) {
	if s == nil {
		return varset.Internal, fmt.Errorf("no config set")
	}
	it := s.Lookup(name)
	if it == nil {
		return varset.Internal, fmt.Errorf("no such quad variable: %s", name)
	}
	if it.Definition().Kind != varset.KindQuad {
		return varset.Internal, fmt.Errorf("variable %s is not quad-typed", name)
	}

	v, err := s.ItemNativeGet(it)
	if err != nil {
		return varset.Internal, err
	}
	cur, ok := v.(QuadValue)
	if !ok || !cur.Valid() {
		return varset.Invalid, fmt.Errorf("quad variable %s holds invalid value %v", name, v)
	}
	return s.ItemNativeSet(it, cur.Toggle())
}
