// Package fetch is the HTTP collaborator shared by scrape-based retrieval
// strategies. It wraps a timeout-bounded http.Client, surfaces HTTP failures
// as StatusError values so callers can classify them, and centralizes the
// transient-vs-permanent decision used by per-strategy retry loops.
package fetch
