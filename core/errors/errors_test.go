package errors

import (
	stderrors "errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	appErr := NewAppError(ErrNotFound, "Room not found", nil)
	if appErr.Error() != "NOT_FOUND: Room not found" {
		t.Errorf("unexpected error string %q", appErr.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	appErr := NewAppError(ErrInternalServer, "Failed to create booking", cause)

	if !stderrors.Is(appErr, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}
