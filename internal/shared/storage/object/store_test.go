package object

import (
	"errors"
	"testing"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "plain", key: "jane_doe_resume.pdf", want: "jane_doe_resume.pdf"},
		{name: "nested", key: "2024/jane_resume.pdf", want: "2024/jane_resume.pdf"},
		{name: "dot segments", key: "a/./b.pdf", want: "a/b.pdf"},
		{name: "backslash", key: `a\b.pdf`, want: "a/b.pdf"},
		{name: "empty", key: "  ", wantErr: true},
		{name: "absolute", key: "/etc/passwd", wantErr: true},
		{name: "traversal", key: "../secret.pdf", wantErr: true},
		{name: "inner traversal", key: "a/../../b.pdf", wantErr: true},
		{name: "dot", key: ".", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("expected ErrInvalidKey, got %v (%q)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("CleanKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
