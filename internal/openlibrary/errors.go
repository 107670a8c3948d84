package openlibrary

import (
	"errors"
	"fmt"
	"net"
)

// ErrEmptyQuery is returned when the trimmed query is empty.
// No request is issued in that case.
var ErrEmptyQuery = errors.New("openlibrary: empty query")

// HTTPError reports a non-2xx response from the search API.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openlibrary: HTTP %d %s", e.Status, e.StatusText)
}

// NetworkError reports a transport-level failure. Offline is set when the
// failure looks like missing connectivity rather than a server problem.
type NetworkError struct {
	Offline bool
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Offline {
		return fmt.Sprintf("openlibrary: offline: %v", e.Err)
	}
	return fmt.Sprintf("openlibrary: network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// isOffline classifies transport errors that indicate no connectivity.
// DNS resolution failures and unreachable-network errors are the closest
// signal Go gives to a platform "online" flag.
func isOffline(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}
