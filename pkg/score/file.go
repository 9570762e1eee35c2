package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps best scores in a JSON object file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the score file. A missing file is not an error.
func (f *FileStore) Load(ctx context.Context) (Scores, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultScores(), nil
	} else if err != nil {
		return DefaultScores(), fmt.Errorf("failed to read scores %s: %w", f.Path, err)
	}

	var stored Scores
	if err := json.Unmarshal(data, &stored); err != nil {
		return DefaultScores(), fmt.Errorf("failed to parse scores %s: %w", f.Path, err)
	}

	scores := DefaultScores()
	for k, v := range stored {
		scores[k] = v
	}
	scores.clamp()

	return scores, nil
}

// Save replaces the score file through a temporary file in the same
// directory.
func (f *FileStore) Save(ctx context.Context, scores Scores) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("failed to replace scores %s: %w", f.Path, err)
	}

	return nil
}

func (f *FileStore) Close() error {
	return nil
}
