package errdef

import (
	"errors"
	"io/fs"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap(CodeFilesystem, nil, "copy %s", "x"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWrapFormat(t *testing.T) {
	err := Wrap(CodeFilesystem, fs.ErrNotExist, "copy %s", "Cargo.toml")
	want := "filesystem: copy Cargo.toml: file does not exist"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped fs.ErrNotExist")
	}
}

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := New(CodePrompt, "stdin closed")
	err := Wrap(CodeFilesystem, inner, "ask")
	if got := CodeOf(err); got != CodePrompt {
		t.Fatalf("expected %q, got %q", CodePrompt, got)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"plain", errors.New("x"), CodeUnknown},
		{"coded", New(CodeUsage, "bad"), CodeUsage},
		{"empty code", New("", "bad"), CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", New(CodeUsage, "x"), 2},
		{"prompt", New(CodePrompt, "x"), 1},
		{"plain", errors.New("x"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
