package varset

// Result classifies the outcome of a Set operation. The low nibble carries
// the outcome code; the bits above it carry success/failure qualifiers.
// A Result is returned alongside an error: the error is nil exactly when
// the code is Success, and otherwise carries the human-readable message.
type Result int

const (
	// Success means the operation completed. Check the qualifier flags to
	// distinguish a plain change from a no-op or an unset outcome.
	Success Result = 0

	// Internal means a programming invariant was violated: missing type
	// descriptor, nil handle, or a previously-accepted default that no
	// longer parses. Not recoverable at the call site.
	Internal Result = 1

	// Unknown means the variable name is not registered.
	Unknown Result = 2

	// Invalid means the candidate value failed type-specific parsing or
	// construction.
	Invalid Result = 3
)

const (
	// FlagEmpty qualifies Success: the operation succeeded and the
	// resulting value is unset (renders as empty text).
	FlagEmpty Result = 1 << (iota + 4)

	// FlagNoChange qualifies Success: the requested value equals the
	// current one; nothing was committed and no observers were notified.
	FlagNoChange

	// FlagValidator qualifies Invalid: parsing succeeded but the
	// registered validator vetoed the change.
	FlagValidator
)

const codeMask Result = 0xF

// Code strips the qualifier flags, leaving the outcome code.
func (r Result) Code() Result {
	return r & codeMask
}

// IsSuccess reports whether the operation succeeded, no-ops included.
func (r Result) IsSuccess() bool {
	return r.Code() == Success
}

// Has reports whether the given qualifier flag is set.
func (r Result) Has(flag Result) bool {
	return r&flag != 0
}

// ValidatorRejected reports whether the failure came from a validator veto
// rather than from parsing.
func (r Result) ValidatorRejected() bool {
	return r.Code() == Invalid && r.Has(FlagValidator)
}

// String renders the code plus any qualifiers, mostly for logs and tests.
func (r Result) String() string {
	var s string
	switch r.Code() {
	case Success:
		s = "success"
	case Internal:
		s = "internal-error"
	case Unknown:
		s = "unknown-variable"
	case Invalid:
		s = "invalid-value"
	default:
		s = "unknown-code"
	}
	if r.Has(FlagEmpty) {
		s += "+empty"
	}
	if r.Has(FlagNoChange) {
		s += "+no-change"
	}
	if r.Has(FlagValidator) {
		s += "+validator"
	}
	return s
}
