package testutil

import (
	"errors"
	"testing"

	apperrors "meansassess/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertErrorMessages checks that err is an *AppError whose user-facing
// messages equal want, in order.
func AssertErrorMessages(t *testing.T, err error, want ...string) {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	got := appErr.Messages()
	if len(got) != len(want) {
		t.Fatalf("expected messages %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
