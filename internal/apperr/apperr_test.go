package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad date"), http.StatusBadRequest},
		{Conflict("slot taken"), http.StatusBadRequest},
		{Policy("last admin"), http.StatusBadRequest},
		{Unauthorized("no session"), http.StatusUnauthorized},
		{Forbidden("wrong role"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound("missing")), http.StatusNotFound},
	}
	for _, tt := range tests {
		if got := Status(tt.err); got != tt.want {
			t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("context: %w", Conflict("dup"))
	if !IsKind(err, KindConflict) {
		t.Error("wrapped conflict not detected")
	}
	if IsKind(err, KindNotFound) {
		t.Error("wrong kind matched")
	}
	if IsKind(errors.New("plain"), KindConflict) {
		t.Error("plain error matched")
	}
}
