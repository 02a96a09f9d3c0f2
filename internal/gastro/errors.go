package gastro

import "fmt"

// HTTPError is a non-2xx response from the GastroBar backend. The status is
// the backend's, so screen handlers can pass it through to the caller.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned HTTP %d", e.Status)
}

// NetworkError is a transport-level failure: the backend was never reached
// or the connection broke before a response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
