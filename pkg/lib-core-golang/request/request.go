package request

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
)

// ReqFactory is a function that creates an instance of a request
type ReqFactory func() (*http.Request, error)

// Get creates a new req factory that creates a get request for given url
func Get(url string) ReqFactory {
	return func() (*http.Request, error) {
		return http.NewRequest("GET", url, nil)
	}
}

// Post creates a new req factory that creates a post request for given url
func Post(url string, contentType string, body io.Reader) ReqFactory {
	return func() (*http.Request, error) {
		req, err := http.NewRequest("POST", url, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}
}

// WithHeader returns a req factory that adds given header to the request
func (f ReqFactory) WithHeader(name string, value string) ReqFactory {
	return func() (*http.Request, error) {
		req, err := f()
		if err != nil {
			return nil, err
		}
		req.Header.Add(name, value)
		return req, nil
	}
}

// ResFactory is a function that holds a request result with a response or error
type ResFactory func() (*http.Response, error)

// ReadAll will read entire body as a byte array
func (f ResFactory) ReadAll() ([]byte, error) {
	res, err := f()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return ioutil.ReadAll(res.Body)
}

// DecodeJSON will decode entire body as a JSON object
func (f ResFactory) DecodeJSON(receiver interface{}) error {
	res, err := f()
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(receiver)
}

func newResFactory(res *http.Response, err error) ResFactory {
	return func() (*http.Response, error) {
		if err != nil {
			return nil, err
		}
		if res.StatusCode >= 300 {
			return nil, NewHTTPErrorFromResponse(res)
		}
		return res, err
	}
}

// Do will send the request. Will fail if response status is other than 2xx
func Do(ctx context.Context, factory ReqFactory) ResFactory {
	httpClient := &http.Client{
		Transport: http.DefaultTransport,
	}
	req, err := factory()
	if err != nil {
		return newResFactory(nil, err)
	}
	return newResFactory(httpClient.Do(req.WithContext(ctx)))
}
