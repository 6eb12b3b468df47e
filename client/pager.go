package client

import (
	"context"
	"iter"

	"github.com/rated-network/rated-go/decode"
)

// page is the envelope of a paginated response. Other envelope fields
// (page metadata, totals) are not used. Data is required; nil means the key
// was absent or null.
type page struct {
	Data *[]map[string]any `json:"data"`
	Next *string            `json:"next"`
}

// Pager lazily walks the items of a paginated endpoint. A page is fetched
// only when the items of the previous one are used up, so stopping early
// never fetches further pages. A Pager is single-pass.
//
// The first decode failure stops the pager; Err reports it.
type Pager[T any] struct {
	client     *Client
	path       string
	params     Params
	followNext bool
	decode     func(map[string]any) (T, error)

	items []map[string]any
	pos   int
	last  bool // no page left to fetch
	pages int
	item  T
	err   error
}

// Paginate returns a pager over the raw (camelCase) items of path.
func Paginate(c *Client, path string, params Params, followNext bool) *Pager[map[string]any] {
	return newPager(c, path, params, followNext, func(m map[string]any) (map[string]any, error) {
		return m, nil
	})
}

// PaginateAs returns a pager that decodes every item of path into T.
func PaginateAs[T any](c *Client, path string, params Params, followNext bool) *Pager[T] {
	return newPager(c, path, params, followNext, func(m map[string]any) (T, error) {
		return decode.Record[T](decode.Decamelize(m))
	})
}

func newPager[T any](c *Client, path string, params Params, followNext bool, fn func(map[string]any) (T, error)) *Pager[T] {
	return &Pager[T]{
		client:     c,
		path:       path,
		params:     params,
		followNext: followNext,
		decode:     fn,
	}
}

// Next advances to the next item, fetching a page if needed. It returns
// false when the items are exhausted or an error occurred.
func (p *Pager[T]) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}

	for p.pos >= len(p.items) {
		if p.last {
			return false
		}
		if err := p.fetch(ctx); err != nil {
			p.fail(err)
			return false
		}
	}

	raw := p.items[p.pos]
	p.items[p.pos] = nil
	p.pos++

	item, err := p.decode(raw)
	if err != nil {
		p.fail(err)
		return false
	}

	p.item = item
	return true
}

// Item returns the item Next advanced to
func (p *Pager[T]) Item() T {
	return p.item
}

// Err returns the error that stopped the pager, if any
func (p *Pager[T]) Err() error {
	return p.err
}

// Pages returns how many pages have been fetched so far
func (p *Pager[T]) Pages() int {
	return p.pages
}

// All returns an iterator over the remaining items. An error is yielded
// once, as the last element.
func (p *Pager[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p.Next(ctx) {
			if !yield(p.item, nil) {
				return
			}
		}
		if p.err != nil {
			var zero T
			yield(zero, p.err)
		}
	}
}

// Collect drains the pager into a slice
func (p *Pager[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for p.Next(ctx) {
		out = append(out, p.item)
	}
	return out, p.err
}

func (p *Pager[T]) fetch(ctx context.Context) error {
	var env page
	if err := p.client.getJSON(ctx, p.path, p.params, &env); err != nil {
		return err
	}
	p.pages++

	if env.Data == nil {
		return &decode.ShapeMismatchError{
			Record: "page",
			Field:  "data",
			Reason: "required field is missing",
		}
	}

	p.items, p.pos = *env.Data, 0
	if env.Next == nil || *env.Next == "" || !p.followNext {
		p.last = true
	} else {
		// the cursor is a complete path and query; earlier params do not apply
		p.path, p.params = *env.Next, nil
	}

	p.client.logger.Debug().
		Int("page", p.pages).
		Int("items", len(p.items)).
		Bool("last", p.last).
		Msg("Fetched Rated API page")

	return nil
}

func (p *Pager[T]) fail(err error) {
	p.err = err
	p.last = true
	p.items, p.pos = nil, 0
}
