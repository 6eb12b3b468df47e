package ethereum

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/rated-network/rated-go/client"
	"github.com/rated-network/rated-go/decode"
)

// ErrMissingWindow indicates an operation that needs a time window got none
var ErrMissingWindow = errors.New("time window is required")

// endpoint is a resource path under Path whose responses decode into T. Path
// segments written as {} are filled from the call's arguments.
type endpoint[T any] struct {
	path string
}

func (e endpoint[T]) url(args ...any) string {
	var b strings.Builder
	b.WriteString(Path)

	rest := e.path
	for _, arg := range args {
		before, after, ok := strings.Cut(rest, "{}")
		if !ok {
			break
		}
		b.WriteString(before)
		b.WriteString(url.PathEscape(fmt.Sprint(arg)))
		rest = after
	}
	b.WriteString(rest)

	return b.String()
}

// one fetches a single object
func one[T any](ctx context.Context, c *client.Client, e endpoint[T], params client.Params, args ...any) (T, error) {
	raw, err := c.Get(ctx, e.url(args...), params)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode.Decode[T](raw)
}

// list fetches an unpaginated array. Any item that fails to decode fails the
// whole call.
func list[T any](ctx context.Context, c *client.Client, e endpoint[T], params client.Params, args ...any) ([]T, error) {
	raw, err := c.Get(ctx, e.url(args...), params)
	if err != nil {
		return nil, err
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, &decode.ShapeMismatchError{
			Record: reflect.TypeFor[T]().Name(),
			Reason: fmt.Sprintf("expected a JSON array, got %T", raw),
		}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := decode.Decode[T](item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// pages walks a paginated collection
func pages[T any](c *client.Client, e endpoint[T], params client.Params, followNext bool, args ...any) *client.Pager[T] {
	return client.PaginateAs[T](c, e.url(args...), params, followNext)
}

// set returns v, or nil when v is the zero value so the parameter is dropped
func set[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}

func requireWindow(w TimeWindow) error {
	if w == "" {
		return &client.ValidationError{Reason: "a time window is required", Err: ErrMissingWindow}
	}
	return nil
}
