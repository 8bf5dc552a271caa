package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps how much of an upstream response is read. Cover images
// are a few kilobytes and appdetails documents well under a megabyte.
const MaxBodyBytes = 8 << 20

// ErrBodyTooLarge is returned when a response exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("upstream response too large")

// StatusError reports a non-2xx response from a third-party API.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status code %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status code %d. Response: %s", e.Service, e.StatusCode, e.Body)
}

// NewStatusError builds a StatusError, truncating long bodies.
func NewStatusError(service string, statusCode int, body []byte) *StatusError {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &StatusError{Service: service, StatusCode: statusCode, Body: string(body)}
}

// IsStatus reports whether err wraps a StatusError.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// CheckStatus returns a StatusError unless code is 2xx.
func CheckStatus(service string, code int, body []byte) error {
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return NewStatusError(service, code, body)
	}
	return nil
}

// ReadBody reads at most MaxBodyBytes from r.
func ReadBody(r io.Reader) ([]byte, error) {
	return readLimited(r, MaxBodyBytes)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}
