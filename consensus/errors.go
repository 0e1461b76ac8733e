package consensus

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ERR_TRUNCATED       ErrorCode = "ERR_TRUNCATED"
	ERR_MALFORMED       ErrorCode = "ERR_MALFORMED"
	ERR_INVALID_SCALAR  ErrorCode = "ERR_INVALID_SCALAR"
	ERR_RECURSION_LIMIT ErrorCode = "ERR_RECURSION_LIMIT"
)

// Sentinels for errors.Is; a CodecError matches any sentinel with the same code.
var (
	ErrTruncated      = &CodecError{Code: ERR_TRUNCATED}
	ErrMalformed      = &CodecError{Code: ERR_MALFORMED}
	ErrInvalidScalar  = &CodecError{Code: ERR_INVALID_SCALAR}
	ErrRecursionLimit = &CodecError{Code: ERR_RECURSION_LIMIT}
)

type CodecError struct {
	Code ErrorCode
	Msg  string
}

func (e *CodecError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func codecerr(code ErrorCode, msg string) error {
	return &CodecError{Code: code, Msg: msg}
}

// CodeOf extracts the ErrorCode carried by err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	var ce *CodecError
	if errors.As(err, &ce) && ce != nil {
		return ce.Code, true
	}
	return "", false
}
