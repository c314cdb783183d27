package varset

// Kind identifies a value kind. Each registered Kind maps to exactly one
// Type descriptor; dispatch is by this tag, never by runtime inspection.
type Kind uint8

const (
	// KindUnknown is the zero Kind; it never has a descriptor.
	KindUnknown Kind = iota
	KindBool
	KindQuad
	KindNumber
	KindString
	KindPath
	KindRegex
	KindSlice
)

// String returns the canonical kind name, matching Type.Name for the
// built-in descriptors.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindQuad:
		return "quad"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindPath:
		return "path"
	case KindRegex:
		return "regex"
	case KindSlice:
		return "slist"
	default:
		return "unknown"
	}
}

// Flags tune how a codec treats a particular variable.
type Flags uint16

const (
	// AllowNot lets a regex value begin with '!' to negate the match.
	AllowNot Flags = 1 << iota

	// MatchCase forces case-sensitive regex compilation, disabling the
	// smart-case heuristic.
	MatchCase

	// NoSub asks for a match-only pattern with no capture groups.
	NoSub

	// NotEmpty rejects empty (unset) values for string and path variables.
	NotEmpty

	// SepComma, SepColon and SepSpace select the separator for list
	// variables. SepColon is assumed when none is given.
	SepComma
	SepColon
	SepSpace
)

// Validator is an optional veto hook, invoked with the proposed native value
// before any commit. Returning a non-nil error rejects the change; the
// stored value is left untouched and the error message is surfaced to the
// caller.
type Validator func(def *Definition, value Value) error

// Definition is the immutable schema record for one named variable. All
// items of that name, account children included, share one Definition.
type Definition struct {
	// Name is the variable name, e.g. "mailcap_path".
	Name string

	// Kind selects the Type descriptor.
	Kind Kind

	// Initial is the encoded default value. Empty means "unset" for kinds
	// that support it.
	Initial string

	// Flags tune codec behavior for this variable.
	Flags Flags

	// Validate, when non-nil, may veto any proposed change.
	Validate Validator
}

// Separator returns the list separator selected by the definition's flags.
func (d *Definition) Separator() string {
	switch {
	case d.Flags&SepComma != 0:
		return ","
	case d.Flags&SepSpace != 0:
		return " "
	default:
		return ":"
	}
}
