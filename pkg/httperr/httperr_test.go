package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsInternal(t *testing.T) {
	if _, ok := AsInternal(nil); ok {
		t.Fatalf("expected false for nil")
	}
	if _, ok := AsInternal(assertErr("other")); ok {
		t.Fatalf("expected false for non-InternalError")
	}

	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("load: %w", NewInternal("Failed to fetch bodies", cause))
	ie, ok := AsInternal(wrapped)
	if !ok {
		t.Fatalf("expected true for wrapped InternalError")
	}
	if ie.Public != "Failed to fetch bodies" || ie.Details() != "connection refused" {
		t.Fatalf("ie=%+v details=%q", ie, ie.Details())
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if got := ie.Error(); got != "Failed to fetch bodies: connection refused" {
		t.Fatalf("Error()=%q", got)
	}
}

func TestInternalErrorWithoutCause(t *testing.T) {
	ie := &InternalError{Public: "boom"}
	if ie.Error() != "boom" || ie.Details() != "" {
		t.Fatalf("ie=%+v", ie)
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
