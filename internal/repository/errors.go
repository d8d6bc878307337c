package repository

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericMessage is shown when a failure carries no message of its own.
const GenericMessage = "An error has occurred. Please try again."

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("repository: invalid API base address")

// ConfigurationError reports an unset or malformed API base address.
type ConfigurationError struct {
	Base string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", ErrConfiguration, e.Base, e.Err)
	}
	return fmt.Sprintf("%v %q", ErrConfiguration, e.Base)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NetworkError reports a request that could not complete.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from the API. Msg is the payload's msg field, if any.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Msg)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// UserMessage maps any repository failure to the text shown in a form.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Msg != "" {
		return apiErr.Msg
	}
	return GenericMessage
}
