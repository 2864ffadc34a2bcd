package service

import (
	"errors"
	"fmt"
)

// 錯誤分類，handler 以 errors.Is 對應 HTTP 狀態碼
var (
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotFound         = errors.New("not found")
	ErrUnsupportedInput = errors.New("unsupported input")

	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
)

// Error is a classified failure whose message is safe to show to clients.
type Error struct {
	kind error
	msg  string
}

// NewError classifies msg under kind, one of the Err* sentinels.
func NewError(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Message returns the client-facing text of err, or "" when err is an
// internal failure that must not be shown.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.msg
	}
	return ""
}
