package imgfetch

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

var ErrNoURL = errors.New("no URL provided")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

// CancelError marks a confirmation prompt the user declined. It is not a
// failure: callers print the message and stop, exit code stays zero.
type CancelError struct {
	Message string
}

func (e *CancelError) Error() string {
	return e.Message
}

// IsCancel reports whether err came from a declined prompt.
func IsCancel(err error) bool {
	var cancel *CancelError
	return errors.As(err, &cancel)
}

// Classify maps err onto the single user-facing message printed for it.
// Each failure class gets its own message; nothing is retried.
func Classify(err error) string {
	var statusErr *StatusError
	var dnsErr *net.DNSError
	var opErr *net.OpError
	var urlErr *url.Error

	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP error: %s", statusErr.Status)
	case isTimeout(err):
		return "Timeout error: Server took too long to respond"
	case errors.As(err, &dnsErr), errors.As(err, &opErr):
		return "Connection error: Unable to reach the server"
	case errors.Is(err, os.ErrPermission):
		return "Permission denied: Cannot write to the directory"
	case errors.As(err, &urlErr):
		return fmt.Sprintf("Request error: %v", urlErr.Err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
