package itinerary

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EMONEY    = "malformed_money"
	EDATE     = "date_parse"
	EMISMATCH = "count_mismatch"
	ENORESULT = "no_result"
)

// Error represents an application-specific error. Field names the
// extraction step that failed, if any.
type Error struct {
	Code    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("itinerary error: field=%s code=%s message=%s", e.Field, e.Code, e.Message)
	}
	return fmt.Sprintf("itinerary error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the underlying error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ErrorField unwraps an application error and returns its field tag.
func ErrorField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// WithField returns a copy of err tagged with field, replacing any inner tag.
// Non-application errors become EINTERNAL errors carrying their text.
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{Code: e.Code, Field: field, Message: e.Message}
	}
	return &Error{Code: EINTERNAL, Field: field, Message: err.Error()}
}
