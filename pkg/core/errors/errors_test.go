package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"no cause", New(CodeUnknown, "something broke"), "something broke"},
		{"with cause", Wrap(errors.New("dial refused"), CodeConnectionFailed, "failed to connect"), "failed to connect: dial refused"},
		{"formatted", Newf(CodeScriptExecution, "script failed with code %d", 5), "script failed with code 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	if Wrap(nil, CodeTransport, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, CodeTransport, "ignored %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, CodeTransport, "rpc failed")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"direct", New(CodeConnectionFailed, "nope"), CodeConnectionFailed},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(CodeScriptExecution, "inner")), CodeScriptExecution},
		{"plain error", errors.New("plain"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("CodeOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(CodeTransport, "rpc failed")
	outer := Wrap(inner, CodeScriptExecution, "script run failed")

	if !HasCode(outer, CodeScriptExecution) {
		t.Error("HasCode should match the outer code")
	}
	if !HasCode(outer, CodeTransport) {
		t.Error("HasCode should match codes deeper in the chain")
	}
	if HasCode(outer, CodeConnectionFailed) {
		t.Error("HasCode should not match absent codes")
	}
}
