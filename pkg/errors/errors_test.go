package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidKind, "unknown chart kind %q", "pie"), `INVALID_KIND: unknown chart kind "pie"`},
		{"wrapped", Wrap(ErrCodeInvalidDefinition, errors.New("eof"), "decode %s", "chart.toml"), "INVALID_DEFINITION: decode chart.toml: eof"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "open %s", "sales.toml")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestCodeSentinel(t *testing.T) {
	err := fmt.Errorf("layout: %w", New(ErrCodeInvalidMode, "unknown mode %q", "zigzag"))
	if !errors.Is(err, &Error{Code: ErrCodeInvalidMode}) {
		t.Error("code sentinel did not match")
	}
	if errors.Is(err, &Error{Code: ErrCodeInvalidColor}) {
		t.Error("sentinel matched a different code")
	}
	if errors.Is(err, &Error{Code: ErrCodeInvalidMode, Message: "other"}) {
		t.Error("sentinel with a message should not match")
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"direct", New(ErrCodeInvalidInput, "width must be positive"), ErrCodeInvalidInput},
		{"fmt wrapped", fmt.Errorf("invalid options: %w", New(ErrCodeInvalidFormat, "gif")), ErrCodeInvalidFormat},
		{"outermost wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInternal},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(err, %s) = false", tt.code)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is matched an unrelated code")
			}
		})
	}
	if Is(errors.New("plain"), "") {
		t.Error(`Is(plain, "") = true`)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(fmt.Errorf("render: %w", New(ErrCodeInvalidColor, "bad color %q", "#zz"))); got != `bad color "#zz"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestCodeMetadata(t *testing.T) {
	tests := []struct {
		err     error
		invalid bool
		status  int
	}{
		{New(ErrCodeInvalidKind, "x"), true, http.StatusBadRequest},
		{New(ErrCodeInvalidColor, "x"), true, http.StatusBadRequest},
		{Wrap(ErrCodeInvalidDefinition, errors.New("eof"), "decode"), true, http.StatusBadRequest},
		{New(ErrCodeFileNotFound, "x"), false, http.StatusNotFound},
		{New(ErrCodeUnsupported, "pdf"), false, http.StatusNotImplemented},
		{New(ErrCodeInternal, "x"), false, http.StatusInternalServerError},
		{New("SOMETHING_NEW", "x"), false, http.StatusInternalServerError},
		{errors.New("plain"), false, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(GetCode(tt.err)), func(t *testing.T) {
			if got := IsInvalid(tt.err); got != tt.invalid {
				t.Errorf("IsInvalid() = %v, want %v", got, tt.invalid)
			}
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
		})
	}
}
