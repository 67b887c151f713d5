package printify

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned when no API token is configured. The check runs
// per call so the service can boot without credentials and still answer other
// routes.
var ErrMissingToken = errors.New("printify: api token not configured")

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("printify: status %d: %s", e.Status, e.Body)
}

func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
