package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "grid must be at least %dx%d", 1, 1)
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v", err.Code)
	}
	if want := "INVALID_CONFIG: grid must be at least 1x1"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetching icon for %s", "Aa")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
	if want := "NETWORK_ERROR: fetching icon for Aa: connection refused"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidMove, "bad token"), ErrCodeInvalidMove, true},
		{"different code", New(ErrCodeInvalidMove, "bad token"), ErrCodeNetwork, false},
		{"wrapped in stdlib error", fmt.Errorf("outer: %w", New(ErrCodeMissingIcon, "no icon")), ErrCodeMissingIcon, true},
		{"plain error", stderrors.New("plain"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeMissingRecord, "desync")); got != ErrCodeMissingRecord {
		t.Errorf("GetCode() = %v", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidSet, "unknown set")); got != "unknown set" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
