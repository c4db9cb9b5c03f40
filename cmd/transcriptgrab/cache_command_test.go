package main

import (
	"context"
	"testing"

	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/providers"
	"transcriptgrab/internal/transcriptcache"
)

func TestCacheListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "Cache is empty")
}

func TestCacheListAndClear(t *testing.T) {
	env := setupCLITestEnv(t)

	store, err := transcriptcache.Open(env.cacheDir, 7, logging.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	result := providers.Result{Transcript: "hello world", Source: "watch-page"}
	if err := store.Store(context.Background(), "dQw4w9WgXcQ", "en", result); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "dQw4w9WgXcQ")
	requireContains(t, out, "watch-page")

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 1 cached transcript(s)")

	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list after clear: %v", err)
	}
	requireContains(t, out, "Cache is empty")
}
