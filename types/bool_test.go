package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-varset/types"
	"github.com/goliatone/go-varset/varset"
)

func TestBoolTokens(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"yes", "yes"},
		{"true", "yes"},
		{"on", "yes"},
		{"y", "yes"},
		{"1", "yes"},
		{"no", "no"},
		{"false", "no"},
		{"off", "no"},
		{"n", "no"},
		{"0", "no"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := varset.New()
			require.NoError(t, types.Register(s))
			require.NoError(t, s.RegisterDefinitions([]*varset.Definition{
				{Name: "sidebar_visible", Kind: varset.KindBool, Initial: "no"},
			}))

			if _, err := s.StringSet("sidebar_visible", tt.text); err != nil {
				t.Fatalf("StringSet(%q): %v", tt.text, err)
			}
			got, _, err := s.StringGet("sidebar_visible")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoolInvalid(t *testing.T) {
	s := varset.New()
	require.NoError(t, types.Register(s))
	require.NoError(t, s.RegisterDefinitions([]*varset.Definition{
		{Name: "sidebar_visible", Kind: varset.KindBool, Initial: "no"},
	}))

	for _, text := range []string{"", "maybe", "YES", "2"} {
		res, err := s.StringSet("sidebar_visible", text)
		if err == nil {
			t.Errorf("StringSet(%q): expected error", text)
		}
		if res.Code() != varset.Invalid {
			t.Errorf("StringSet(%q): got %v, want invalid", text, res)
		}
	}
}

func TestBoolToggle(t *testing.T) {
	s := varset.New()
	require.NoError(t, types.Register(s))
	require.NoError(t, s.RegisterDefinitions([]*varset.Definition{
		{Name: "sidebar_visible", Kind: varset.KindBool, Initial: "no"},
		{Name: "sidebar_width", Kind: varset.KindNumber, Initial: "30"},
	}))

	if _, err := types.ToggleBool(s, "sidebar_visible"); err != nil {
		t.Fatal(err)
	}
	v, err := s.NativeGet("sidebar_visible")
	if err != nil {
		t.Fatal(err)
	}
	if v != true {
		t.Errorf("got %v, want true", v)
	}

	if _, err := types.ToggleBool(s, "sidebar_visible"); err != nil {
		t.Fatal(err)
	}
	v, _ = s.NativeGet("sidebar_visible")
	if v != false {
		t.Errorf("got %v, want false", v)
	}

	res, err := types.ToggleBool(s, "sidebar_width")
	if err == nil {
		t.Error("toggling a number should fail")
	}
	if res.Code() != varset.Internal {
		t.Errorf("got %v, want internal", res)
	}
}
