package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput           = errors.New("empty input")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoRuleApplies        = errors.New("no sandhi rule applies")
	ErrCorruptLexicon       = errors.New("corrupt lexicon blob")
	ErrIncompatibleVersion  = errors.New("incompatible lexicon format version")
	ErrUnknownRule          = errors.New("unknown rule code")
	ErrNotDevanagari        = errors.New("input is not devanagari")
	ErrCorrectionOutOfRange = errors.New("correction index out of range")
)

// EngineError attaches component context to a sentinel error.
type EngineError struct {
	Err       error
	Component string
	Message   string
}

func (e *EngineError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Component, e.Err.Error(), e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func New(sentinel error, component string, message string) *EngineError {
	return &EngineError{
		Err:       sentinel,
		Component: component,
		Message:   message,
	}
}

func Newf(sentinel error, component string, format string, args ...any) *EngineError {
	return &EngineError{
		Err:       sentinel,
		Component: component,
		Message:   fmt.Sprintf(format, args...),
	}
}

// IsFatal reports whether err means the engine cannot serve lookups at
// all, as opposed to a per-word condition the caller can skip over.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCorruptLexicon) || errors.Is(err, ErrIncompatibleVersion)
}
