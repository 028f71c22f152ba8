package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rpupo63/portfolio-backend/models"
)

// FileCache keeps one JSON file per language in a directory.
type FileCache struct {
	dir string
}

// NewFileCache creates dir if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(lang models.Language) string {
	return filepath.Join(c.dir, lang.CacheKey()+".json")
}

func (c *FileCache) Read(_ context.Context, lang models.Language) (*models.SnapshotPatch, error) {
	data, err := os.ReadFile(c.path(lang))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return decode(data)
}

// Write replaces the snapshot atomically so readers never see half a file.
func (c *FileCache) Write(_ context.Context, lang models.Language, snapshot models.Snapshot) error {
	data, err := encode(snapshot)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, lang.CacheKey()+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path(lang))
}
