package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	// ErrInvalidCursor indicates the cursor could not be decoded.
	ErrInvalidCursor = errors.New("invalid cursor format")
	// ErrCursorMismatch indicates a cursor issued for another listing.
	ErrCursorMismatch = errors.New("cursor does not belong to this listing")
)

// Cursor is an opaque position in a listing: the key of the last item seen.
type Cursor struct {
	Kind string
	Key  string
}

// Encode returns a URL-safe Base64 representation.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.Key))
}

// IsZero reports whether c points at the start of a listing.
func (c Cursor) IsZero() bool {
	return c.Kind == "" && c.Key == ""
}

// DecodeCursor parses a cursor produced by Encode. The empty string is the zero cursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	kind, key, ok := strings.Cut(string(b), ":")
	if !ok || kind == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Kind: kind, Key: key}, nil
}
