package dc

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrLex        = errors.New("lex error")
	ErrSyntax     = errors.New("syntax error")
	ErrField      = errors.New("field error")
	ErrIncomplete = errors.New("incomplete information")
)

// LexError reports input that no lexical rule matches.
type LexError struct {
	Offset  int
	Snippet string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognised syntax at offset %d: %q", e.Offset, e.Snippet)
}

func (e *LexError) Is(target error) bool { return target == ErrLex }

// SyntaxReason classifies a structural error.
type SyntaxReason string

const (
	ReasonUnmatched     SyntaxReason = "unmatched delimiter"
	ReasonDuplicate     SyntaxReason = "duplicate section"
	ReasonNested        SyntaxReason = "nested section"
	ReasonUnknownFormat SyntaxReason = "unrecognised output format"
	ReasonUnknownToken  SyntaxReason = "unrecognised token"
)

// SyntaxError reports a delimiter or section structure violation.
type SyntaxError struct {
	Reason SyntaxReason
	Scope  ScopeKind
	Offset int
	Text   string // offending literal, when there is one
}

func (e *SyntaxError) Error() string {
	switch e.Reason {
	case ReasonUnknownFormat:
		return fmt.Sprintf("%s %q at offset %d: supported formats are PDF, HTML, TXT, MD, DOC", e.Reason, e.Text, e.Offset)
	case ReasonUnknownToken:
		return fmt.Sprintf("%s %q at offset %d", e.Reason, e.Text, e.Offset)
	}
	return fmt.Sprintf("%s: %s (%s) at offset %d", e.Reason, e.Scope, e.Scope.Delimiters(), e.Offset)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// FieldError reports a section whose contents fail arity or value checks.
type FieldError struct {
	Scope    ScopeKind
	Field    string // empty for arity errors
	Expected int
	Actual   int
	Raw      string
	Reason   string
	Err      error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: expected %d fields separated by ';', got %d", e.Scope, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: invalid %s %q: %s", e.Scope, e.Field, e.Raw, e.Reason)
}

func (e *FieldError) Is(target error) bool { return target == ErrField }

func (e *FieldError) Unwrap() error { return e.Err }

// IncompleteError reports a required field that no section populated.
type IncompleteError struct {
	Field string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s not provided", e.Field)
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

// ErrorKind is a coarse error category for logs and reports.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindLex        ErrorKind = "lex"
	KindSyntax     ErrorKind = "syntax"
	KindField      ErrorKind = "field"
	KindIncomplete ErrorKind = "incomplete"
	KindOther      ErrorKind = "other"
)

// Classify maps an error onto its category.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrLex):
		return KindLex
	case errors.Is(err, ErrSyntax):
		return KindSyntax
	case errors.Is(err, ErrField):
		return KindField
	case errors.Is(err, ErrIncomplete):
		return KindIncomplete
	}
	return KindOther
}
