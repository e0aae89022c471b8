/*
Package fetch implements a JSON POST helper.

A request body is serialized as JSON and posted with content type
application/json; the JSON response is decoded into a value of a type
chosen by the caller:

    type result struct{ OK bool `json:"ok"` }
    r, err := fetch.Post[result](ctx, "https://example.org/api", map[string]int{"a": 1})

Responses with a status outside of 200–299 result in a *StatusError.
Network errors are returned as they are reported by net/http, wrapped
with context. There are no retries.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'jbase.fetch'.
func tracer() tracing.Trace {
	return tracing.Select("jbase.fetch")
}

// StatusError is returned for responses with a status code outside of the
// range 200–299.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
	Body       []byte // start of the response body, if any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("POST %s: bad status code from server: [%d] %s", e.URL, e.StatusCode, e.Status)
}

// maxErrorBody limits the response body kept in a StatusError.
const maxErrorBody = 512

// Client posts JSON requests. The zero value is not usable; use NewClient.
type Client struct {
	http   *http.Client
	header http.Header
}

// Option configures a client or a single request.
type Option func(*Client)

// WithClient sets the HTTP client to use.
func WithClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) Option {
	return func(cl *Client) {
		cl.header.Add(key, value)
	}
}

// NewClient creates a client. Without options, http.DefaultClient is used.
func NewClient(opts ...Option) *Client {
	c := &Client{http: http.DefaultClient, header: make(http.Header)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClient = NewClient()

// Default returns the default client.
func Default() *Client {
	return defaultClient
}

// with derives a client with additional options applied.
func (c *Client) with(opts []Option) *Client {
	if len(opts) == 0 {
		return c
	}
	derived := &Client{http: c.http, header: c.header.Clone()}
	for _, opt := range opts {
		opt(derived)
	}
	return derived
}

// Post posts body as JSON to url and decodes the JSON response into out,
// which has to be a pointer (or nil, to ignore the response body).
// A nil body is sent as an empty JSON object.
func (c *Client) Post(ctx context.Context, url string, body interface{}, out interface{}) error {
	if body == nil {
		body = struct{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "cannot encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "cannot create request for %s", url)
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	tracer().P("url", url).Debugf("POST %d bytes", len(payload))
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "bad POST request to %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		start, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		tracer().P("url", url).Infof("POST failed with status %d", resp.StatusCode)
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status, Body: start}
	}
	if out == nil {
		_, err = io.Copy(ioutil.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return errors.Wrapf(err, "cannot decode response of %s", url)
	}
	return nil
}

// Post posts body as JSON to url with the default client, and decodes the
// JSON response into a value of type T.
func Post[T any](ctx context.Context, url string, body interface{}, opts ...Option) (T, error) {
	var result T
	err := Default().with(opts).Post(ctx, url, body, &result)
	return result, err
}

// Promise delivers the result of an asynchronous request. Calling it
// blocks until the result is available; it may be called more than once.
type Promise[T any] func() (T, error)

// PostAsync starts a POST request in the background and returns
// immediately. Cancel ctx to abort the request.
func PostAsync[T any](ctx context.Context, url string, body interface{}, opts ...Option) Promise[T] {
	type result struct {
		value T
		err   error
	}
	done := make(chan struct{})
	var r result
	go func() {
		defer close(done)
		r.value, r.err = Post[T](ctx, url, body, opts...)
	}()
	return func() (T, error) {
		<-done
		return r.value, r.err
	}
}
