package request

import (
	"fmt"
	"io/ioutil"
	"net/http"
)

// HTTPError represents a non 2xx response
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (err *HTTPError) Error() string {
	if err.Body != "" {
		return fmt.Sprintf("HTTP error: %v, body: %v", err.Status, err.Body)
	}
	return fmt.Sprintf("HTTP error: %v", err.Status)
}

// NewHTTPErrorFromResponse creates an HTTPError from given response
func NewHTTPErrorFromResponse(res *http.Response) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}
	if res.Body != nil {
		defer res.Body.Close()
		if body, err := ioutil.ReadAll(res.Body); err == nil {
			httpErr.Body = string(body)
		}
	}
	return httpErr
}

// IsHTTPError returns an HTTPError if given err is one
func IsHTTPError(err error) (*HTTPError, bool) {
	httpErr, ok := err.(*HTTPError)
	return httpErr, ok
}
