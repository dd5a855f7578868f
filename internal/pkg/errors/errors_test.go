package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeAccountLocked, "account temporarily locked", http.StatusLocked),
			want: "ACCOUNT_LOCKED: account temporarily locked",
		},
		{
			name: "with wrapped error",
			err:  Wrap(errors.New("db down"), CodeValidationFailed, "bad input", http.StatusBadRequest),
			want: "VALIDATION_FAILED: bad input: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	wrapped := Wrap(inner, CodeTokenInvalid, "bad token", http.StatusUnauthorized)

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := ErrDuplicateEmail()
	wrapped := fmt.Errorf("register: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should find AppError through wrapping")
	}
	if got.Code != CodeDuplicateEmail {
		t.Errorf("Code = %q, want %q", got.Code, CodeDuplicateEmail)
	}
	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Error("IsAppError should reject plain errors")
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(ErrAccountLocked(), CodeAccountLocked) {
		t.Error("IsCode should match ACCOUNT_LOCKED")
	}
	if IsCode(ErrAccountLocked(), CodeInvalidCredentials) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(errors.New("plain"), CodeAccountLocked) {
		t.Error("IsCode should reject plain errors")
	}
}

func TestConstructorsStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NotFound("X", "x"), http.StatusNotFound},
		{BadRequest("X", "x"), http.StatusBadRequest},
		{Unauthorized("X", "x"), http.StatusUnauthorized},
		{Forbidden("X", "x"), http.StatusForbidden},
		{Conflict("X", "x"), http.StatusConflict},
		{Locked("X", "x"), http.StatusLocked},
		{Internal("X", "x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if tt.err.HTTPStatus != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.err.Code, tt.err.HTTPStatus, tt.want)
		}
	}
}

func TestEnumerationSafety(t *testing.T) {
	// Unknown-user and wrong-password failures must be indistinguishable.
	a := ErrInvalidCredentials()
	b := ErrInvalidCredentials()
	if a.Code != b.Code || a.Message != b.Message || a.HTTPStatus != b.HTTPStatus {
		t.Error("invalid credential errors must be identical")
	}
}
