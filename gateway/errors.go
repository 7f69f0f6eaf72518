package gateway

import "fmt"

// RequestFailed is any non-2xx response from the store API. Message carries
// the server's message field when the body had one.
type RequestFailed struct {
	Status  int
	Message string
}

func (e *RequestFailed) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("store api: request failed with status %d", e.Status)
}

// NetworkUnreachable is a transport-level failure: the request never got a
// response at all.
type NetworkUnreachable struct {
	Err error
}

func (e *NetworkUnreachable) Error() string {
	return "store api: network unreachable: " + e.Err.Error()
}

func (e *NetworkUnreachable) Unwrap() error { return e.Err }

// MalformedResponse is a 2xx response whose body did not decode into the
// expected shape. Failing fast here keeps half-parsed data out of the views.
type MalformedResponse struct {
	Err error
}

func (e *MalformedResponse) Error() string {
	return "store api: malformed response: " + e.Err.Error()
}

func (e *MalformedResponse) Unwrap() error { return e.Err }
