package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-json-experiment/json"
	"golang.org/x/sync/errgroup"

	"github.com/sghaida/genlab/result"
)

// ErrNilTransform is reported by GetTransform when no transform is given.
var ErrNilTransform = errors.New("fetch: nil transform")

// ErrNilClient is reported when a request is made through a nil Client.
var ErrNilClient = errors.New("fetch: nil client")

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Code int
	URL  string
}

// Error implements the error interface.
func (e StatusError) Error() string {
	// Example: fetch: unexpected status 404 from "http://host/user/9"
	return "fetch: unexpected status " + strconv.Itoa(e.Code) + " from " + strconv.Quote(e.URL)
}

// Response is the outcome of a JSON request.
//
// On failure Data is the zero value of T and Error holds the message.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// Respond converts a Result into a Response.
func Respond[T any](r result.Result[T]) Response[T] {
	if r.Err != nil {
		return Response[T]{Success: false, Error: r.Err.Error()}
	}
	return Response[T]{Success: true, Data: r.Data}
}

// Get fetches path and decodes the JSON body into T.
func Get[T any](ctx context.Context, c *Client, path string) Response[T] {
	return Respond(FetchResult[T](ctx, c, path))
}

// GetTransform fetches path, decodes the JSON body into T and returns fn's
// view of it. A panic inside fn is reported as a failed Response.
func GetTransform[T, R any](ctx context.Context, c *Client, path string, fn func(T) R) Response[R] {
	if fn == nil {
		return Respond(result.Failure[R](ErrNilTransform))
	}
	return Respond(result.TryCatch(ctx, func(ctx context.Context) (R, error) {
		var zero R
		raw, err := get[T](ctx, c, path)
		if err != nil {
			return zero, err
		}
		return fn(raw), nil
	}))
}

// FetchResult fetches path and returns the decoded value or the error.
func FetchResult[T any](ctx context.Context, c *Client, path string) result.Result[T] {
	return result.TryCatch(ctx, func(ctx context.Context) (T, error) {
		return get[T](ctx, c, path)
	})
}

// GetAll fetches every path with at most limit requests in flight.
//
// limit <= 0 means no bound. Responses are returned in the order of paths.
func GetAll[T any](ctx context.Context, c *Client, paths []string, limit int) []Response[T] {
	out := make([]Response[T], len(paths))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range paths {
		g.Go(func() error {
			out[i] = Get[T](ctx, c, p)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	if c == nil {
		return zero, ErrNilClient
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := c.URL(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "fetch request", "url", url)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "fetch failed", "url", url, "error", err)
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.WarnContext(ctx, "fetch unexpected status", "url", url, "status", resp.StatusCode)
		return zero, StatusError{Code: resp.StatusCode, URL: url}
	}

	var data T
	if err := json.UnmarshalRead(resp.Body, &data); err != nil {
		c.log.WarnContext(ctx, "fetch decode failed", "url", url, "error", err)
		return zero, err
	}
	return data, nil
}
