package pagination

import (
	"errors"
	"testing"
)

func TestCursorEncodeDecode(t *testing.T) {
	cursor := &Cursor{Date: "2024-01-16"}

	encoded := cursor.Encode()
	decoded, err := DecodeCursor(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded == nil {
		t.Fatalf("decoded cursor is nil")
	}
	if decoded.Date != cursor.Date {
		t.Fatalf("decoded cursor mismatch: %+v", decoded)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	tests := map[string]string{
		"bad base64":   "bad!=base64",
		"not json":     "bm90LWpzb24=",
		"missing date": (&Cursor{}).Encode(),
	}

	for name, in := range tests {
		if _, err := DecodeCursor(in); !errors.Is(err, ErrInvalidCursor) {
			t.Fatalf("%s: expected ErrInvalidCursor, got %v", name, err)
		}
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	cursor, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor, got %+v", cursor)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, DefaultLimit},
		{MaxLimit + 1, MaxLimit},
		{50, 50},
	}

	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPage(t *testing.T) {
	items, more := Page([]int{1, 2, 3}, 2)
	if !more || len(items) != 2 {
		t.Fatalf("Page with extra row = %v, %v", items, more)
	}

	items, more = Page([]int{1, 2}, 2)
	if more || len(items) != 2 {
		t.Fatalf("Page without extra row = %v, %v", items, more)
	}
}
