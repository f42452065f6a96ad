package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	absRoot, err := filepath.Abs(root)
	if err != nil {
		t.Fatal(err)
	}
	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			t.Fatal(err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestWalk_IncludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"article.txt",
		"notes/draft.md",
		"notes/image.png",
		"deep/nested/story.txt",
	})

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	got := relPaths(t, root, files)
	want := map[string]bool{
		"article.txt":           true,
		"notes/draft.md":        true,
		"deep/nested/story.txt": true,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %d files", got, len(want))
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected file: %s", p)
		}
	}
}

func TestWalk_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"keep.txt",
		"skip/inside.txt",
	})

	w := NewWalker([]string{"**/*.txt"}, []string{"skip/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	got := relPaths(t, root, files)
	if len(got) != 1 || got[0] != "keep.txt" {
		t.Errorf("got %v, want [keep.txt]", got)
	}
}

func TestWalk_EmptyIncludesMatchAll(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"a.txt", "b/c.md"})

	w := NewWalker(nil, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2", len(files))
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("some article text"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "some article text" {
		t.Errorf("ReadFile = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
