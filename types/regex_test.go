package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-varset/types"
	"github.com/goliatone/go-varset/varset"
)

func newRegexSet(t *testing.T, flags varset.Flags, initial string) *varset.Set {
	t.Helper()
	s := varset.New()
	require.NoError(t, types.Register(s))
	require.NoError(t, s.RegisterDefinitions([]*varset.Definition{
		{Name: "mask", Kind: varset.KindRegex, Flags: flags, Initial: initial},
	}))
	return s
}

func TestRegexSmartCase(t *testing.T) {
	s := newRegexSet(t, varset.AllowNot, "")

	// All-lowercase patterns compile case-insensitively.
	_, err := s.StringSet("mask", "^[a-z]+")
	require.NoError(t, err)

	v, err := s.NativeGet("mask")
	require.NoError(t, err)
	r := v.(*types.Regex)
	assert.False(t, r.Not)
	assert.True(t, r.MatchString("HELLO"))
	assert.True(t, r.MatchString("hello"))

	got, _, _ := s.StringGet("mask")
	assert.Equal(t, "^[a-z]+", got)

	// An uppercase letter anywhere makes the match case-sensitive.
	_, err = s.StringSet("mask", "^TODO")
	require.NoError(t, err)
	v, _ = s.NativeGet("mask")
	r = v.(*types.Regex)
	assert.True(t, r.MatchString("TODO: fix"))
	assert.False(t, r.MatchString("todo: fix"))
}

func TestRegexMatchCaseFlag(t *testing.T) {
	s := newRegexSet(t, varset.MatchCase, "")

	_, err := s.StringSet("mask", "^inbox")
	require.NoError(t, err)
	v, _ := s.NativeGet("mask")
	r := v.(*types.Regex)
	assert.True(t, r.MatchString("inbox/work"))
	assert.False(t, r.MatchString("INBOX/work"))
}

func TestRegexNegation(t *testing.T) {
	s := newRegexSet(t, varset.AllowNot, "")

	_, err := s.StringSet("mask", "!^TODO")
	require.NoError(t, err)

	v, err := s.NativeGet("mask")
	require.NoError(t, err)
	r := v.(*types.Regex)
	assert.True(t, r.Not)
	assert.False(t, r.MatchString("TODO list"))
	assert.True(t, r.MatchString("done list"))

	// Rendering preserves the raw pattern, '!' included.
	got, _, _ := s.StringGet("mask")
	assert.Equal(t, "!^TODO", got)

	// Without AllowNot the '!' is part of the pattern.
	s2 := newRegexSet(t, 0, "")
	_, err = s2.StringSet("mask", "!x")
	require.NoError(t, err)
	v, _ = s2.NativeGet("mask")
	r = v.(*types.Regex)
	assert.False(t, r.Not)
	assert.True(t, r.MatchString("!x"))
}

func TestRegexInvalidPattern(t *testing.T) {
	s := newRegexSet(t, 0, "^ok")

	res, err := s.StringSet("mask", "*boom[")
	assert.Error(t, err)
	assert.Equal(t, varset.Invalid, res.Code())

	// The previous value survives a failed compile.
	got, _, _ := s.StringGet("mask")
	assert.Equal(t, "^ok", got)
}

func TestRegexEmpty(t *testing.T) {
	s := newRegexSet(t, 0, "^x")

	res, err := s.StringSet("mask", "")
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.True(t, res.Has(varset.FlagEmpty))

	got, res, err := s.StringGet("mask")
	require.NoError(t, err)
	assert.True(t, res.Has(varset.FlagEmpty))
	assert.Equal(t, "", got)

	// Setting empty again is a no-op.
	res, err = s.StringSet("mask", "")
	require.NoError(t, err)
	assert.True(t, res.Has(varset.FlagNoChange))
}

func TestRegexNativeSetCopies(t *testing.T) {
	s := newRegexSet(t, varset.AllowNot, "")

	orig, err := types.NewRegex("!^spam", varset.AllowNot)
	require.NoError(t, err)

	_, err = s.NativeSet("mask", orig)
	require.NoError(t, err)

	v, err := s.NativeGet("mask")
	require.NoError(t, err)
	stored := v.(*types.Regex)

	// The registry recompiles from the pattern; the caller's matcher is
	// never aliased.
	require.NotSame(t, orig, stored)
	assert.Equal(t, orig.Pattern, stored.Pattern)
	assert.True(t, stored.Not)
	assert.NotSame(t, orig.Compiled(), stored.Compiled())
}

func TestRegexRoundTrip(t *testing.T) {
	patterns := []string{"^[a-z]+", "!^TODO", "a|b", "^([ \\t]*[|>:}#])+"}
	s := newRegexSet(t, varset.AllowNot, "")

	for _, p := range patterns {
		_, err := s.StringSet("mask", p)
		require.NoError(t, err, p)
		got, _, err := s.StringGet("mask")
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}
