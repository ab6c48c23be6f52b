package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lexdesk/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "UnprocessableEntity",
			err:     failure.UnprocessableEntity("weekend not available"),
			code:    http.StatusUnprocessableEntity,
			message: "weekend not available",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("missing token"),
			code:    http.StatusUnauthorized,
			message: "missing token",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("appointment"),
			code:    http.StatusNotFound,
			message: "appointment",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("slot already booked"),
			code:    http.StatusConflict,
			message: "slot already booked",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("nope"),
			code:    http.StatusForbidden,
			message: "nope",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(tt.err))
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestGetCode_WrappedAndPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", failure.Conflict("duplicate"))
	if failure.GetCode(wrapped) != http.StatusConflict {
		t.Errorf("expected wrapped failure to keep its code, got %d", failure.GetCode(wrapped))
	}

	if failure.GetCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Errorf("expected plain error to default to 500")
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}
