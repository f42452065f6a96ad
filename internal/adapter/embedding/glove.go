package embedding

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table maps word tokens to fixed-dimension embedding vectors in the
// GloVe text format: one line per token, the token followed by
// whitespace-separated floats. The table is immutable after Load and may
// be shared across goroutines without synchronization.
type Table struct {
	vectors   map[string][]float64
	dimension int
}

// Load reads an embedding table from path. The dimension is taken from
// the first line and enforced on every following line; a line that does
// not parse as token + floats fails the load.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedding file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses an embedding table from r. Used by Load and by tests that
// build tables from in-memory fixtures.
func Read(r io.Reader) (*Table, error) {
	t := &Table{vectors: make(map[string][]float64)}

	scanner := bufio.NewScanner(r)
	// GloVe lines for 300d vectors exceed the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("embedding line %d: expected token and vector, got %q", lineNo, line)
		}

		token := fields[0]
		vec := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("embedding line %d: bad float %q: %w", lineNo, field, err)
			}
			vec[i] = v
		}

		if t.dimension == 0 {
			t.dimension = len(vec)
		} else if len(vec) != t.dimension {
			return nil, fmt.Errorf("embedding line %d: dimension %d, expected %d", lineNo, len(vec), t.dimension)
		}

		t.vectors[token] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read embedding file: %w", err)
	}

	return t, nil
}

// Lookup returns the vector for token, or false when the token is not in
// the vocabulary. Callers must not mutate the returned slice.
func (t *Table) Lookup(token string) ([]float64, bool) {
	vec, ok := t.vectors[token]
	return vec, ok
}

// Dimension returns the vector length shared by all entries, 0 for an
// empty table.
func (t *Table) Dimension() int {
	return t.dimension
}

// Size returns the vocabulary size.
func (t *Table) Size() int {
	return len(t.vectors)
}
