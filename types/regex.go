package types

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/goliatone/go-varset/varset"
)

// Regex is a compiled pattern plus its source text. Pattern keeps the raw
// text verbatim, leading '!' included, so rendering round-trips exactly.
// The compiled matcher is present iff the pattern is non-empty.
type Regex struct {
	// Pattern is the original text, including any leading '!'.
	Pattern string

	// Not negates the match; set only when the definition allows negation
	// and the text began with '!'.
	Not bool

	re *regexp.Regexp
}

// MatchString applies the pattern, honoring negation.
func (r *Regex) MatchString(s string) bool {
	if r == nil || r.re == nil {
		return false
	}
	m := r.re.MatchString(s)
	if r.Not {
		return !m
	}
	return m
}

// Compiled exposes the underlying matcher; nil for an unset pattern.
func (r *Regex) Compiled() *regexp.Regexp {
	if r == nil {
		return nil
	}
	return r.re
}

// NewRegex compiles text under the given flags. With AllowNot, a leading
// '!' is stripped and recorded as negation. Unless MatchCase is set, a
// pattern containing no uppercase letters compiles case-insensitively
// (smart case). NoSub documents a match-only intent; Go's regexp has no
// distinct nosub compile mode.
func NewRegex(text string, flags varset.Flags) (*Regex, error) {
	r := &Regex{Pattern: text}

	expr := text
	if flags&varset.AllowNot != 0 && strings.HasPrefix(expr, "!") {
		r.Not = true
		expr = expr[1:]
	}

	if flags&varset.MatchCase == 0 && !containsUpper(expr) {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	r.re = re
	return r, nil
}

func containsUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// RegexType is the codec for pattern variables. Native value: *Regex.
// Empty text means an unset pattern.
type RegexType struct{}

func (RegexType) Name() string { return "regex" }

func (RegexType) StringSet(def *varset.Definition, text string) (varset.Value, varset.Result, error) {
	if text == "" {
		return nil, varset.Success | varset.FlagEmpty, nil
	}
	r, err := NewRegex(text, def.Flags)
	if err != nil {
		return nil, varset.Invalid, err
	}
	return r, varset.Success, nil
}

func (RegexType) StringGet(def *varset.Definition, v varset.Value) (string, varset.Result, error) {
	if v == nil {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	r, ok := v.(*Regex)
	if !ok {
		return "", varset.Internal, fmt.Errorf("regex variable holds %T", v)
	}
	if r == nil || r.Pattern == "" {
		return "", varset.Success | varset.FlagEmpty, nil
	}
	return r.Pattern, varset.Success, nil
}

// NativeSet deep-copies by recompiling from the source pattern, so the
// stored matcher never aliases the caller's.
func (RegexType) NativeSet(def *varset.Definition, v varset.Value) (varset.Value, varset.Result, error) {
	if v == nil {
		return nil, varset.Success | varset.FlagEmpty, nil
	}
	orig, ok := v.(*Regex)
	if !ok {
		return nil, varset.Invalid, fmt.Errorf("invalid regex value: %v", v)
	}
	if orig == nil || orig.Pattern == "" {
		return nil, varset.Success | varset.FlagEmpty, nil
	}

	r, err := NewRegex(orig.Pattern, def.Flags)
	if err != nil {
		return nil, varset.Invalid, err
	}
	return r, varset.Success, nil
}

func (RegexType) NativeGet(def *varset.Definition, v varset.Value) (varset.Value, error) {
	return v, nil
}

func (t RegexType) Reset(def *varset.Definition, initial string) (varset.Value, varset.Result, error) {
	return t.StringSet(def, initial)
}

func (RegexType) Destroy(v varset.Value) {
	if r, ok := v.(*Regex); ok && r != nil {
		r.re = nil
	}
}
