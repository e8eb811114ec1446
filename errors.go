package alien

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	InvalidSyntax ErrorKind = iota + 1
	UnbalancedParentheses
	MalformedGroup
	NotANumber
	UnknownOperator
	DivisionByZero
)

var kindNames = map[ErrorKind]string{
	InvalidSyntax:         "InvalidSyntax",
	UnbalancedParentheses: "UnbalancedParentheses",
	MalformedGroup:        "MalformedGroup",
	NotANumber:            "NotANumber",
	UnknownOperator:       "UnknownOperator",
	DivisionByZero:        "DivisionByZero",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("invalid error kind: %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *ErrorKind) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	for kind, name := range kindNames {
		if strings.EqualFold(name, s) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown error kind: %q", s)
}

// Error is returned for every malformed input. Token holds the offending
// text when there is one.
type Error struct {
	Kind  ErrorKind
	Token string
	Err   error
}

var (
	ErrInvalidSyntax         = &Error{Kind: InvalidSyntax}
	ErrUnbalancedParentheses = &Error{Kind: UnbalancedParentheses}
	ErrMalformedGroup        = &Error{Kind: MalformedGroup}
	ErrNotANumber            = &Error{Kind: NotANumber}
	ErrUnknownOperator       = &Error{Kind: UnknownOperator}
	ErrDivisionByZero        = &Error{Kind: DivisionByZero}
)

func newError(kind ErrorKind, token string) *Error {
	return &Error{Kind: kind, Token: token}
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case InvalidSyntax:
		msg = fmt.Sprintf("%q must start with a digit or '('", e.Token)
	case UnbalancedParentheses:
		msg = fmt.Sprintf("unbalanced parentheses in %q", e.Token)
	case MalformedGroup:
		msg = fmt.Sprintf("%q is not a valid operable group", e.Token)
	case NotANumber:
		msg = fmt.Sprintf("operand %q is not an integer", e.Token)
	case UnknownOperator:
		msg = fmt.Sprintf("%q is not a valid operator", e.Token)
	case DivisionByZero:
		msg = fmt.Sprintf("zero left operand in %q", e.Token)
	default:
		msg = e.Token
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target with a
// Token only matches an error carrying the same token.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Token == "" || t.Token == e.Token)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
