package req

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// HTTPError is an error that knows which HTTP status it maps to.
type HTTPError struct {
	Code    int
	Status  string
	Message string
	cause   error
}

// NewHTTPError records the caller's stack. A zero code means 500.
func NewHTTPError(message string, code int) *HTTPError {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &HTTPError{
		Code:    code,
		Status:  http.StatusText(code),
		Message: message,
		cause:   errors.New(message),
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) StackTrace() errors.StackTrace {
	if st, ok := e.cause.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *HTTPError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%d %s: %+v", e.Code, e.Status, e.cause)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Message)
	case 'q':
		fmt.Fprintf(s, "%q", e.Message)
	}
}

// CodeOf returns the HTTP code carried by err, 500 for any other error.
func CodeOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// ParseError returns the message of err, or "" for nil.
func ParseError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
