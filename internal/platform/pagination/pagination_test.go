package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
)

type row struct{ Key string }

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{Key: fmt.Sprintf("row-%02d", i+1)}
	}
	return out
}

func keyOf(r row) string { return r.Key }

func TestCursorRoundTrip(t *testing.T) {
	tests := []Cursor{
		{Kind: "user", Key: "john.doe@agric-empower.org"},
		{Kind: "user", Key: "with:colon"},
		{Kind: "user", Key: ""},
	}
	for _, c := range tests {
		got, err := DecodeCursor(c.Encode())
		if err != nil {
			t.Fatalf("decode %+v: %v", c, err)
		}
		if got != c {
			t.Fatalf("got %+v, want %+v", got, c)
		}
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	for _, s := range []string{"!!!", "bm9jb2xvbg", "OmtleQ"} {
		if _, err := DecodeCursor(s); !errors.Is(err, ErrInvalidCursor) {
			t.Fatalf("%q: expected ErrInvalidCursor, got %v", s, err)
		}
	}
}

func TestPaginateWalksForwardAndBack(t *testing.T) {
	items := rows(7)
	req := Request{Kind: "row", Limit: 3, BaseURL: "/v1/users"}

	first, err := Paginate(items, req, keyOf)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first.Items) != 3 || first.Items[0].Key != "row-01" || first.Total != 7 {
		t.Fatalf("unexpected first page: %+v", first)
	}
	if first.PrevCursor != "" || first.NextCursor == "" {
		t.Fatalf("unexpected cursors: %+v", first)
	}

	req.Cursor = first.NextCursor
	second, err := Paginate(items, req, keyOf)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if second.Items[0].Key != "row-04" {
		t.Fatalf("unexpected second page start: %s", second.Items[0].Key)
	}

	req.Cursor = second.NextCursor
	third, err := Paginate(items, req, keyOf)
	if err != nil {
		t.Fatalf("third page: %v", err)
	}
	if len(third.Items) != 1 || third.Items[0].Key != "row-07" || third.NextCursor != "" {
		t.Fatalf("unexpected last page: %+v", third)
	}

	req.Cursor = third.PrevCursor
	back, err := Paginate(items, req, keyOf)
	if err != nil {
		t.Fatalf("prev page: %v", err)
	}
	if back.Items[0].Key != "row-04" {
		t.Fatalf("expected prev page to start at row-04, got %s", back.Items[0].Key)
	}

	req.Cursor = second.PrevCursor
	top, err := Paginate(items, req, keyOf)
	if err != nil {
		t.Fatalf("top page: %v", err)
	}
	if top.Items[0].Key != "row-01" {
		t.Fatalf("expected top page, got %s", top.Items[0].Key)
	}
}

func TestPaginateRejectsForeignCursor(t *testing.T) {
	_, err := Paginate(rows(3), Request{Kind: "row", Cursor: Cursor{Kind: "item", Key: "x"}.Encode()}, keyOf)
	if !errors.Is(err, ErrCursorMismatch) {
		t.Fatalf("expected ErrCursorMismatch, got %v", err)
	}
}

func TestPaginateDefaultLimit(t *testing.T) {
	page, err := Paginate(rows(25), Request{Kind: "row"}, keyOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != DefaultLimit {
		t.Fatalf("expected %d items, got %d", DefaultLimit, len(page.Items))
	}
}

func TestPaginateLinkHeaderKeepsQuery(t *testing.T) {
	page, err := Paginate(rows(5), Request{
		Kind:    "row",
		Limit:   2,
		BaseURL: "/v1/users",
		Query:   url.Values{"role": {"farmer"}, "cursor": {"stale"}},
	}, keyOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(page.LinkHeader, `rel="next"`) || !strings.Contains(page.LinkHeader, "role=farmer") {
		t.Fatalf("unexpected link header: %s", page.LinkHeader)
	}
	if strings.Contains(page.LinkHeader, "stale") {
		t.Fatalf("stale cursor leaked into link header: %s", page.LinkHeader)
	}
	if !strings.Contains(page.LinkHeader, "limit=2") {
		t.Fatalf("limit missing from link header: %s", page.LinkHeader)
	}
}

func TestBuildLinkHeaderEmpty(t *testing.T) {
	if got := BuildLinkHeader("/v1/users", nil, "", ""); got != "" {
		t.Fatalf("expected empty header, got %q", got)
	}
}
