package pagination

import (
	"net/url"
	"strconv"
)

// Page is one window of a listing.
type Page[T any] struct {
	Items      []T
	Total      int
	NextCursor string
	PrevCursor string
	LinkHeader string
}

// Request describes the window a caller asked for.
type Request struct {
	Kind    string
	Cursor  string
	Limit   int
	BaseURL string
	Query   url.Values
}

// Paginate cuts the window after the cursor's key out of items. An unknown
// key restarts the listing from the top.
func Paginate[T any](items []T, req Request, keyOf func(T) string) (Page[T], error) {
	cursor, err := DecodeCursor(req.Cursor)
	if err != nil {
		return Page[T]{}, err
	}
	if !cursor.IsZero() && cursor.Kind != req.Kind {
		return Page[T]{}, ErrCursorMismatch
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	total := len(items)

	start := 0
	if cursor.Key != "" {
		for i, item := range items {
			if keyOf(item) == cursor.Key {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, total)
	window := items[start:end]

	var next, prev string
	if end < total && len(window) > 0 {
		next = Cursor{Kind: req.Kind, Key: keyOf(window[len(window)-1])}.Encode()
	}
	if start > 0 {
		// The previous window ends right before start; its cursor is the key before it.
		prevStart := start - limit
		if prevStart <= 0 {
			prev = Cursor{Kind: req.Kind}.Encode()
		} else {
			prev = Cursor{Kind: req.Kind, Key: keyOf(items[prevStart-1])}.Encode()
		}
	}

	q := cloneValues(req.Query)
	q.Del("cursor")
	q.Set("limit", strconv.Itoa(limit))

	return Page[T]{
		Items:      window,
		Total:      total,
		NextCursor: next,
		PrevCursor: prev,
		LinkHeader: BuildLinkHeader(req.BaseURL, q, next, prev),
	}, nil
}
