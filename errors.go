package gotrans

import (
	"fmt"
	"strings"
)

// TransportError indicates the HTTP exchange with a backend failed: the
// connection, the timeout, reading the body, or a non-success status.
type TransportError struct {
	Engine     string
	Message    string
	StatusCode int // HTTP status, 0 if no response was received
	Cause      error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("transport error (%s): %s", e.Engine, e.Message)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// DecodeError indicates a response body did not have the shape the backend
// expects: malformed JSON, a missing required field, or an HTML marker that
// could not be found.
type DecodeError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error (%s): %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error (%s): %s", e.Engine, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// RequestBuildError indicates the outgoing request could not be constructed,
// typically because the configured endpoint is not a valid URL.
type RequestBuildError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *RequestBuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request build error (%s): %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("request build error (%s): %s", e.Engine, e.Message)
}

func (e *RequestBuildError) Unwrap() error {
	return e.Cause
}

// UnknownEngineError is returned by the registry for an engine name it does
// not know. It is a configuration error; no backend is ever substituted.
type UnknownEngineError struct {
	Engine    string
	Available []string
}

func (e *UnknownEngineError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown engine %q", e.Engine)
	}
	return fmt.Sprintf("unknown engine %q (available: %s)", e.Engine, strings.Join(e.Available, ", "))
}
