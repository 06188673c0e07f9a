package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileSignalsOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landscape.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := WatchFile(ctx, path)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}

	if err := os.WriteFile(path, []byte(`{"items":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case _, ok := <-changes:
		if !ok {
			t.Fatal("channel closed before delivering a change")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal after rewrite")
	}
}

func TestWatchFileClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landscape.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := WatchFile(ctx, path)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	cancel()

	select {
	case _, ok := <-changes:
		if ok {
			// A write raced the cancel; the close must still follow.
			if _, ok := <-changes; ok {
				t.Fatal("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchFileRejectsBadTargets(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if _, err := WatchFile(ctx, dir); err == nil {
		t.Fatal("expected error watching a directory")
	}
	if _, err := WatchFile(ctx, filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error watching a missing file")
	}
}
