package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	c := OpenCache(t.TempDir())
	url := "https://landscape.example.com/data/full.json"

	if _, err := c.Get(url); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}

	payload := []byte(`{"items": []}`)
	if err := c.Put(url, payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := c.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("cached payload mismatch: %q", got)
	}

	// Different URLs do not collide.
	if _, err := c.Get(url + "?v=2"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss for different url, got %v", err)
	}

	if err := c.Drop(url); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := c.Get(url); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss after drop, got %v", err)
	}
}
