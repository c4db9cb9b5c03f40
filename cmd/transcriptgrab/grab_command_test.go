package main

import (
	"testing"
)

func TestGrabRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"grab", "dQw4w9WgXcQ", "--format", "yaml"}, env.configPath)
	if err == nil {
		t.Fatal("expected format error")
	}
	requireContains(t, err.Error(), "unsupported format")
}

func TestGrabRejectsUnknownLanguage(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"grab", "dQw4w9WgXcQ", "--lang", "klingonish"}, env.configPath)
	if err == nil {
		t.Fatal("expected language error")
	}
	requireContains(t, err.Error(), "unrecognized language")
}

func TestGrabRejectsMalformedInput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"grab", "not a video!!"}, env.configPath)
	if err == nil {
		t.Fatal("expected video id error")
	}
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("root help: %v", err)
	}
	requireContains(t, out, "Fetch YouTube transcripts")
	requireContains(t, out, "grab")
}
