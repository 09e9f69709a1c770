package diagnostic

import (
	"errors"
	"fmt"

	"derive-generator/internal/source"
)

// Kind classifies a fatal expansion failure.
type Kind int

const (
	// KindSyntax covers lexing and structural parse failures.
	KindSyntax Kind = iota
	// KindUnsupportedItem is a derive applied to something other than a
	// struct or enum (or an enum where only structs are accepted).
	KindUnsupportedItem
	// KindUnknownAttribute is an attribute key the generator does not know.
	KindUnknownAttribute
	// KindMalformedAttribute is a missing or unparseable attribute value.
	KindMalformedAttribute
	// KindInvalidFlatten is a flatten on a field whose type is not a path.
	KindInvalidFlatten
	// KindUnsupportedStrategy is a Display argument matching no strategy.
	KindUnsupportedStrategy
)

// Sentinel errors matched with errors.Is against an *Error.
var (
	ErrSyntax              = errors.New("syntax error")
	ErrUnsupportedItem     = errors.New("unsupported item")
	ErrUnknownAttribute    = errors.New("unknown attribute")
	ErrMalformedAttribute  = errors.New("malformed attribute")
	ErrInvalidFlatten      = errors.New("invalid flatten target")
	ErrUnsupportedStrategy = errors.New("unsupported strategy")
)

// Code returns the stable diagnostic code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindUnsupportedItem:
		return "unsupported_item"
	case KindUnknownAttribute:
		return "unknown_attribute"
	case KindMalformedAttribute:
		return "malformed_attribute"
	case KindInvalidFlatten:
		return "invalid_flatten"
	case KindUnsupportedStrategy:
		return "unsupported_strategy"
	default:
		return UnknownStr
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindSyntax:
		return ErrSyntax
	case KindUnsupportedItem:
		return ErrUnsupportedItem
	case KindUnknownAttribute:
		return ErrUnknownAttribute
	case KindMalformedAttribute:
		return ErrMalformedAttribute
	case KindInvalidFlatten:
		return ErrInvalidFlatten
	case KindUnsupportedStrategy:
		return ErrUnsupportedStrategy
	default:
		return nil
	}
}

// Error is a fatal diagnostic raised while expanding one item.
// Error() returns Message verbatim so callers can match exact text.
type Error struct {
	Kind    Kind
	Message string
	Span    source.Span
	// Suggestions are possible fixes; they never alter Message.
	Suggestions []string
}

// Errorf creates an *Error of the given kind.
func Errorf(kind Kind, span source.Span, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// WithSuggestions attaches suggestions and returns the receiver.
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Diagnostic converts the error into a reportable diagnostic for the named
// item, with location rendered against file (which may be nil).
func (e *Error) Diagnostic(item string, file *source.File) Diagnostic {
	d := Diagnostic{
		Severity:    DiagnosticError,
		Code:        e.Kind.Code(),
		Message:     e.Message,
		Item:        item,
		Suggestions: e.Suggestions,
	}

	if file != nil {
		d.Location = file.Position(e.Span.Start).String()
	}

	return d
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}

	return nil, false
}
