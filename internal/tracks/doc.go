// Package tracks models available caption tracks and selects the best match
// for a requested language.
//
// Selection prefers human-authored tracks over auto-generated ones for the
// same language; remaining ties fall back to a deterministic secondary order
// (shortest language code, then lexicographic) that carries no semantic
// meaning beyond stability.
package tracks
