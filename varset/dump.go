package varset

import (
	"github.com/goliatone/go-errors"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Snapshot renders every registered item to its canonical text form.
// Mirroring children render their parent's live value.
func (s *Set) Snapshot() map[string]string {
	out := make(map[string]string, len(s.items))
	for name, it := range s.items {
		text, res, _ := s.ItemStringGet(it)
		if res.IsSuccess() {
			out[name] = text
		}
	}
	return out
}

// Koanf loads the snapshot into a koanf instance, so collaborators can read
// settings with the usual koanf accessors.
func (s *Set) Koanf() (*koanf.Koanf, error) {
	flat := make(map[string]any, len(s.items))
	for name, text := range s.Snapshot() {
		flat[name] = text
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(flat, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to load settings snapshot").
			WithTextCode("SNAPSHOT_LOAD_FAILED")
	}
	return k, nil
}

// DumpJSON serializes the rendered settings as JSON, for diagnostics and
// for surfacing the full registry state to external tooling.
func (s *Set) DumpJSON() ([]byte, error) {
	k, err := s.Koanf()
	if err != nil {
		return nil, err
	}
	out, err := k.Marshal(kjson.Parser())
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to marshal settings snapshot").
			WithTextCode("SNAPSHOT_MARSHAL_FAILED")
	}
	return out, nil
}
