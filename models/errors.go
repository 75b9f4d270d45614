package models

import "fmt"

// ErrorKind classifies why a relay request failed.
type ErrorKind string

// Relay failure kinds. They are mutually exclusive and are checked in the
// order listed: an upstream status wins over a transport failure, which wins
// over a setup failure.
const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindUpstreamHTTP ErrorKind = "upstream_http"
	KindNoResponse   ErrorKind = "no_response"
	KindRequestSetup ErrorKind = "request_setup"
)

// Client-facing messages for each failure kind.
const (
	MsgURLRequired  = "URL parameter is required"
	MsgNoResponse   = "No response received from target server"
	MsgRequestSetup = "Request setup failed"
)

// RelayError is the internal error type returned by the relay.
// Status is the upstream HTTP status and is zero when no response arrived.
type RelayError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error // wrapped original error
}

func (e *RelayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// NewRelayError creates a new RelayError.
func NewRelayError(kind ErrorKind, message string, status int, err error) *RelayError {
	return &RelayError{Kind: kind, Message: message, Status: status, Err: err}
}

// UpstreamError builds the error for a remote that answered with a failing status.
func UpstreamError(status int, statusText string) *RelayError {
	return &RelayError{
		Kind:    KindUpstreamHTTP,
		Message: fmt.Sprintf("HTTP %d: %s", status, statusText),
		Status:  status,
	}
}

// ToResponse converts the error to the JSON body sent by /api/proxy.
func (e *RelayError) ToResponse() ProxyResponse {
	resp := ProxyResponse{
		Success: false,
		Error:   e.Message,
		Kind:    string(e.Kind),
		Status:  e.Status,
	}
	if e.Err != nil {
		resp.Details = e.Err.Error()
	}
	return resp
}
