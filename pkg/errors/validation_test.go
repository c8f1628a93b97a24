package errors

import (
	"strings"
	"testing"
)

func TestValidateGrid(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"default grid", 3, 3, false},
		{"single cell", 1, 1, false},
		{"tall", 10, 1, false},
		{"zero rows", 0, 3, true},
		{"zero cols", 3, 0, true},
		{"negative", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrid(tt.rows, tt.cols)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGrid(%d, %d) = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", GetCode(err))
			}
		})
	}
}

func TestValidateCaseName(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"simple", "Aa", false},
		{"with spaces", "4x4x4 PLL Parity", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length ok", strings.Repeat("a", 128), false},
		{"control character", "bad\x01name", true},
		{"path separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCaseName(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCaseName(%q) = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	if err := ValidateOutputDir("lernkarten"); err != nil {
		t.Errorf("ValidateOutputDir(lernkarten) = %v", err)
	}
	if err := ValidateOutputDir(""); err == nil {
		t.Error("ValidateOutputDir empty path succeeded")
	}
	if err := ValidateOutputDir("a\x00b"); err == nil {
		t.Error("ValidateOutputDir with null byte succeeded")
	}
}
