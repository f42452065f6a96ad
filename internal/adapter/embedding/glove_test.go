package embedding

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead_ValidTable(t *testing.T) {
	src := `cat 1.0 0.0
dog 0.0 1.0
sat 1.0 1.0
`
	table, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Dimension() != 2 {
		t.Errorf("expected dimension 2, got %d", table.Dimension())
	}
	if table.Size() != 3 {
		t.Errorf("expected 3 entries, got %d", table.Size())
	}

	vec, ok := table.Lookup("cat")
	if !ok {
		t.Fatal("expected 'cat' to be in the table")
	}
	if math.Abs(vec[0]-1.0) > 1e-12 || math.Abs(vec[1]-0.0) > 1e-12 {
		t.Errorf("unexpected vector for 'cat': %v", vec)
	}

	if _, ok := table.Lookup("unicorn"); ok {
		t.Error("expected 'unicorn' to be absent")
	}
}

func TestRead_SkipsBlankLines(t *testing.T) {
	src := "cat 1.0 0.0\n\n\ndog 0.0 1.0\n"
	table, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Size() != 2 {
		t.Errorf("expected 2 entries, got %d", table.Size())
	}
}

func TestRead_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"token only", "cat\n"},
		{"bad float", "cat 1.0 abc\n"},
		{"dimension mismatch", "cat 1.0 0.0\ndog 1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.src)); err == nil {
				t.Errorf("expected error for %q", tt.src)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/glove.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "glove.txt")

	content := "cat 1.0 0.5 0.25\ndog 0.0 1.0 2.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Dimension() != 3 {
		t.Errorf("expected dimension 3, got %d", table.Dimension())
	}
}
