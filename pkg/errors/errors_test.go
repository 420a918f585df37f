package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDimensionality, "points must be 2 dimensional, got %d columns", 3)

	if err.Code != ErrCodeDimensionality {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeDimensionality)
	}
	want := "points must be 2 dimensional, got 3 columns"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"without cause",
			New(ErrCodeUnsupportedKind, "unknown layer kind"),
			"UNSUPPORTED_KIND: unknown layer kind",
		},
		{
			"with cause",
			Wrap(ErrCodeInvalidScene, fmt.Errorf("boom"), "failed to load scene.toml"),
			"INVALID_SCENE: failed to load scene.toml: boom",
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

func TestWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(ErrCodeInternal, cause, "conversion failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeDimensionality, "bad shape"), ErrCodeDimensionality, true},
		{"mismatching code", New(ErrCodeDimensionality, "bad shape"), ErrCodeUnsupportedKind, false},
		{"wrapped structured error", fmt.Errorf("outer: %w", New(ErrCodeExtensionMismatch, "not svg")), ErrCodeExtensionMismatch, true},
		{"plain error", fmt.Errorf("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %q) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidColormap, "no such colormap")); got != ErrCodeInvalidColormap {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidColormap)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeDimensionality, "ellipse must have exactly 4 vertices")
	if got := UserMessage(err); got != "ellipse must have exactly 4 vertices" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := fmt.Errorf("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
