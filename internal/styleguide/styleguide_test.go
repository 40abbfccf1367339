package styleguide

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	docs, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(docs.Positive, "## Investigating") {
		t.Fatalf("positive examples missing investigating section")
	}
	if !strings.Contains(docs.Negative, "Why it fails") {
		t.Fatalf("negative examples missing rationale")
	}
}

func TestLoadDirOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PositiveFile), []byte("custom positive"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	docs, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if docs.Positive != "custom positive" {
		t.Fatalf("expected override, got %q", docs.Positive)
	}
	// 부정 예시는 디렉터리에 없으므로 내장 문서 사용
	if !strings.Contains(docs.Negative, "Negative Examples") {
		t.Fatalf("expected embedded negative examples")
	}
}
