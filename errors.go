package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDefinition     = errors.New("malformed definition")
	ErrUnknownSymbol           = errors.New("symbol not in alphabet")
	ErrUnboundedClosure        = errors.New("epsilon closure exceeds configuration limit")
	ErrTooComplexToDeterminize = errors.New("determinization exceeds state limit")
	ErrHeadOutOfBounds         = errors.New("head out of tape bounds")
	ErrWrongKind               = errors.New("operation not supported for automaton kind")
)

// DefinitionError Describes the declaration that makes a Definition invalid.
type DefinitionError struct {
	Section     string // States, Symbols, Stack, Transitions or Band
	Declaration string // offending declaration, as written when known
	Reason      string
}

func (e *DefinitionError) Error() string {
	if e.Declaration == "" {
		return fmt.Sprintf("%s: [%s] %s", ErrMalformedDefinition, e.Section, e.Reason)
	}
	return fmt.Sprintf("%s: [%s] %q: %s", ErrMalformedDefinition, e.Section, e.Declaration, e.Reason)
}

func (e *DefinitionError) Unwrap() error {
	return ErrMalformedDefinition
}

func malformed(section, decl, format string, args ...any) error {
	return &DefinitionError{
		Section:     section,
		Declaration: decl,
		Reason:      fmt.Sprintf(format, args...),
	}
}
