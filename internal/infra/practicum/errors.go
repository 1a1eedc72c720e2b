package practicum

import (
	"fmt"
	"net/url"
)

// TransportError means the request never produced an HTTP response
// (DNS failure, timeout, connection reset).
type TransportError struct {
	URL    string
	Params url.Values
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to API failed: %v. URL - %s, params - %s", e.Err, e.URL, e.Params.Encode())
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError means the API answered but reported a failure: a non-200 status,
// an undecodable body, or an explicit error field in the payload.
type ServiceError struct {
	URL        string
	Params     url.Values
	StatusCode int
	Field      string // "code" or "error" when the payload reported the failure
	Reason     string
}

func (e *ServiceError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("API reported an error in field %q: %s. URL - %s, params - %s", e.Field, e.Reason, e.URL, e.Params.Encode())
	case e.Reason != "":
		return fmt.Sprintf("API response is unusable: %s (status %d). URL - %s, params - %s", e.Reason, e.StatusCode, e.URL, e.Params.Encode())
	default:
		return fmt.Sprintf("API endpoint unavailable: status %d. URL - %s, params - %s", e.StatusCode, e.URL, e.Params.Encode())
	}
}
