package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreSave(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save("resume.pdf", []byte("content"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, "-resume.pdf") {
		t.Fatalf("stored name must keep the sanitized original, got %q", name)
	}

	content, err := os.ReadFile(filepath.Join(store.Root(), name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "content" {
		t.Fatalf("content mismatch: %q", content)
	}
}

func TestFileStoreSaveUniqueNames(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save("resume.pdf", []byte("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save("resume.pdf", []byte("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Fatalf("same original name must not collide, got %q twice", first)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"My Resume (final).pdf", "My_Resume__final_.pdf"},
		{"../../etc/passwd", "passwd"},
		{"übermensch.txt", "_bermensch.txt"},
		{"", "file"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
