// Package snapshot persists the current working set as NDJSON so the
// dashboard can rebuild reports without refetching from the provider.
package snapshot

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qepting91/linkpulse/internal/domain"
)

// Store reads and replaces the snapshot file
type Store struct {
	Path string
}

// Write replaces the snapshot with the given posts, one JSON object per line.
// Parent directories are created as needed.
func (s Store) Write(posts []domain.PostRecord) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.Path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}

	enc := json.NewEncoder(f)
	for _, post := range posts {
		// Write as NDJSON
		if err := enc.Encode(post); err != nil {
			f.Close()
			return fmt.Errorf("encode snapshot record: %w", err)
		}
	}
	return f.Close()
}

// Load reads the snapshot back in file order, skipping blank lines
func (s Store) Load() ([]domain.PostRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var posts []domain.PostRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var post domain.PostRecord
		if err := json.Unmarshal(line, &post); err != nil {
			return nil, fmt.Errorf("decode snapshot record: %w", err)
		}
		posts = append(posts, post)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return posts, nil
}
