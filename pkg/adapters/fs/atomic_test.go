package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.json")

	if err := writeFileAtomic(target, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("content = %s", data)
	}

	// Overwrite replaces wholesale.
	if err := writeFileAtomic(target, []byte(`{"b":2}`), 0644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _ = os.ReadFile(target)
	if string(data) != `{"b":2}` {
		t.Errorf("content after overwrite = %s", data)
	}

	// No temp files survive a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), TempFilePrefix) {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}
