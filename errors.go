package texhyph

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors of pattern handling.
type ErrorKind int

const (
	// MalformedPattern: a pattern violates the letter/digit alternation rule,
	// carries a digit outside 0…9 or contains an unrecognized character.
	MalformedPattern ErrorKind = iota + 1
	// ImmutableTree: a mutating call on a compressed pattern tree.
	ImmutableTree
	// DuplicateHyphenation: a pattern is inserted twice with differing weights
	// and the tree rejects duplicates.
	DuplicateHyphenation
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedPattern:
		return "MALFORMED"
	case ImmutableTree:
		return "IMMUTABLE"
	case DuplicateHyphenation:
		return "DUPLICATE"
	}
	return "UNKNOWN"
}

// Sentinel errors, to be tested with errors.Is.
var (
	ErrMalformedPattern     = errors.New("malformed hyphenation pattern")
	ErrImmutableTree        = errors.New("pattern tree is compressed and immutable")
	ErrDuplicateHyphenation = errors.New("duplicate hyphenation pattern")
)

// PatternError is an error concerning a single pattern.
type PatternError struct {
	Kind    ErrorKind // classification of the error
	Pattern string    // pattern text as given by the pattern source (may be empty)
	Ordinal int       // 1-based position of the pattern in a load (0 if unknown)
	Issue   string    // human-readable description of the issue
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	if e.Ordinal > 0 {
		return fmt.Sprintf("[%s] pattern #%d %q: %s", e.Kind, e.Ordinal, e.Pattern, e.Issue)
	}
	return fmt.Sprintf("[%s] pattern %q: %s", e.Kind, e.Pattern, e.Issue)
}

// Is makes PatternError match the sentinel error of its kind.
func (e *PatternError) Is(target error) bool {
	switch e.Kind {
	case MalformedPattern:
		return target == ErrMalformedPattern
	case ImmutableTree:
		return target == ErrImmutableTree
	case DuplicateHyphenation:
		return target == ErrDuplicateHyphenation
	}
	return false
}

func malformed(pattern string, format string, args ...interface{}) *PatternError {
	return &PatternError{
		Kind:    MalformedPattern,
		Pattern: pattern,
		Issue:   fmt.Sprintf(format, args...),
	}
}
