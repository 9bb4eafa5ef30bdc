package kubeconfig

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures so callers can map them to messages
type ErrorKind string

const (
	KindNotFound                  ErrorKind = "NotFound"
	KindEmptyConfig               ErrorKind = "EmptyConfig"
	KindEmptyContent              ErrorKind = "EmptyContent"
	KindParse                     ErrorKind = "Parse"
	KindRead                      ErrorKind = "Read"
	KindPermission                ErrorKind = "Permission"
	KindDiskSpace                 ErrorKind = "DiskSpace"
	KindWrite                     ErrorKind = "Write"
	KindContextNotFound           ErrorKind = "ContextNotFound"
	KindAlreadyExists             ErrorKind = "AlreadyExists"
	KindCannotDeleteActiveContext ErrorKind = "CannotDeleteActiveContext"
	KindValidation                ErrorKind = "Validation"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrNotFound                  = &Error{Kind: KindNotFound}
	ErrEmptyConfig               = &Error{Kind: KindEmptyConfig}
	ErrEmptyContent              = &Error{Kind: KindEmptyContent}
	ErrParse                     = &Error{Kind: KindParse}
	ErrRead                      = &Error{Kind: KindRead}
	ErrPermission                = &Error{Kind: KindPermission}
	ErrDiskSpace                 = &Error{Kind: KindDiskSpace}
	ErrWrite                     = &Error{Kind: KindWrite}
	ErrContextNotFound           = &Error{Kind: KindContextNotFound}
	ErrAlreadyExists             = &Error{Kind: KindAlreadyExists}
	ErrCannotDeleteActiveContext = &Error{Kind: KindCannotDeleteActiveContext}
	ErrValidation                = &Error{Kind: KindValidation}
)

// Error is the typed error returned by every Store operation
type Error struct {
	Kind ErrorKind
	Path string // kubeconfig path, for file errors
	Name string // context name, for context errors
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func contextNotFound(name string) *Error {
	return &Error{
		Kind: KindContextNotFound,
		Name: name,
		Msg:  fmt.Sprintf("context %q not found", name),
	}
}

func validationError(format string, args ...any) *Error {
	return &Error{
		Kind: KindValidation,
		Msg:  fmt.Sprintf(format, args...),
	}
}
