package providers

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrTransient, "watch-page", "fetch captions", cause)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient marker in %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to survive wrapping: %v", err)
	}
	if !strings.Contains(err.Error(), "watch-page: fetch captions") {
		t.Fatalf("expected provider and operation in message, got %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrNoCaptions, "player-api", "list tracks", nil)
	if !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected no-captions marker in %v", err)
	}
}

func TestWrapDefaultsToPermanent(t *testing.T) {
	err := Wrap(nil, "", "", errors.New("boom"))
	if !errors.Is(err, ErrPermanent) {
		t.Fatalf("expected permanent marker in %v", err)
	}
	if !strings.Contains(err.Error(), "provider failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}
