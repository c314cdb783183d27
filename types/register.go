package types

import (
	"github.com/goliatone/go-varset/varset"
)

// Register installs all built-in codecs into a Set. Call it once, before
// registering any definitions.
func Register(s *varset.Set) error {
	codecs := []struct {
		kind varset.Kind
		t    varset.Type
	}{
		{varset.KindBool, Bool{}},
		{varset.KindQuad, Quad{}},
		{varset.KindNumber, Number{}},
		{varset.KindString, String{}},
		{varset.KindPath, Path{}},
		{varset.KindRegex, RegexType{}},
		{varset.KindSlice, Slice{}},
	}
	for _, c := range codecs {
		if err := s.RegisterType(c.kind, c.t); err != nil {
			return err
		}
	}
	return nil
}
