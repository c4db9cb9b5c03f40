package main

import "testing"

func TestDepsReportsConfiguredBinary(t *testing.T) {
	env := setupCLITestEnv(t)

	// The test config points the downloader at "sh", which always resolves.
	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "sh")
	requireContains(t, out, "yes")
}

func TestDepsToleratesMissingOptionalBinary(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Ytdlp.Binary = "definitely-not-installed-xyz"
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err != nil {
		t.Fatalf("deps with missing optional binary: %v", err)
	}
	requireContains(t, out, "no")
}
