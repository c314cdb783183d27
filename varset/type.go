package varset

// Value is an opaque native handle. The concrete type is owned by the codec:
// bool for booleans, int for numbers, string for strings and paths,
// []string for lists, and codec-defined structs for richer kinds. A nil
// Value always means "unset".
type Value = any

// Type is the six-operation contract implementing one value kind. The Set
// never special-cases a kind: every mutation and query dispatches through
// the descriptor registered for the item's Kind.
//
// Codecs are pure with respect to item storage: they parse, render, copy
// and release values, while the Set owns the compare/validate/commit/notify
// sequence.
type Type interface {
	// Name is the canonical kind name, e.g. "regex".
	Name() string

	// StringSet parses text into a native candidate. Empty text means
	// "unset" for kinds that support it (nil value, Success|FlagEmpty);
	// kinds with no unset form return Invalid. A parse failure returns
	// Invalid with a diagnostic error and a nil value.
	StringSet(def *Definition, text string) (Value, Result, error)

	// StringGet renders a native value to text. An unset (nil) value
	// renders as empty text with Success|FlagEmpty, not as an error.
	StringGet(def *Definition, v Value) (string, Result, error)

	// NativeSet builds an owned copy of a pre-built candidate so the
	// caller's value and the registry's value have independent lifetimes.
	// Codecs owning resources rebuild them (a regex is recompiled from its
	// pattern). Returns Invalid for a malformed or out-of-range candidate.
	NativeSet(def *Definition, v Value) (Value, Result, error)

	// NativeGet returns the native value as an opaque borrowed handle.
	// It never fails on a well-formed item.
	NativeGet(def *Definition, v Value) (Value, error)

	// Reset parses an encoded initial value into a native candidate. The
	// Set reclassifies a parse failure here as Internal, since a
	// previously-accepted default that stops parsing is a registry bug.
	Reset(def *Definition, initial string) (Value, Result, error)

	// Destroy releases any resources owned by the value. Called before a
	// value is replaced and when an item is destroyed.
	Destroy(v Value)
}
