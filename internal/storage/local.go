package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"coursepay/internal/domain"
)

// LocalStore keeps receipt files on disk. Files are served back by the
// HTTP layer under the configured base URL.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.StorageError{Op: "init", Err: err}
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return domain.StorageError{Op: "save", Err: err}
	}

	// keys never contain separators, but never trust that
	name := filepath.Base(key)
	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return domain.StorageError{Op: "save", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return domain.StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return domain.StorageError{Op: "save", Err: err}
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.Dir, name)); err != nil {
		return domain.StorageError{Op: "save", Err: err}
	}
	return nil
}

func (s *LocalStore) PublicURL(key string) string {
	return s.BaseURL + "/" + filepath.Base(key)
}
