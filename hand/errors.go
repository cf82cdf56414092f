package hand

import "fmt"

// GrammarError reports a required fixed-format line that does not match its
// expected pattern at all. It is fatal to the parse: no partial record is
// returned.
type GrammarError struct {
	Section string // which extraction step failed (header, table, pot, ...)
	Line    string // the offending token, empty when the token is missing
}

func (e *GrammarError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("hand: missing %s", e.Section)
	}
	return fmt.Sprintf("hand: %s does not match expected format: %q", e.Section, e.Line)
}

// UnknownFieldError reports a matched field whose raw value is not in the
// closed enumeration for that field.
type UnknownFieldError struct {
	Field string
	Value string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("hand: unrecognized %s value %q", e.Field, e.Value)
}

// InconsistentDataError reports two independently parsed facts that disagree,
// such as a hero name that is not present in the seat listing.
type InconsistentDataError struct {
	Field  string
	Value  string
	Detail string
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("hand: inconsistent %s %q: %s", e.Field, e.Value, e.Detail)
}
