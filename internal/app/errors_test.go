package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		err  *OperationError
		want string
	}{
		{NewOperationError("open", "a.txt", fs.ErrPermission), "open a.txt: permission denied"},
		{NewOperationError("read", "", errors.New("eof")), "read: eof"},
		{NewOperationError("draw", "a.txt", nil).WithContext("frame 3"), "draw a.txt (frame 3)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	err := error(NewOperationError("open", "a.txt", fs.ErrPermission))
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("OperationError should unwrap to its cause")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError methods should be safe")
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&InitError{Component: "config", Err: cause})

	if err.Error() != "init config: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrInitialization) {
		t.Error("InitError should match ErrInitialization")
	}
	if !errors.Is(err, cause) {
		t.Error("InitError should unwrap to its cause")
	}
}
