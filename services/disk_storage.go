package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DiskAssetStorage keeps assets under <dir>/<bucket>/<key> and serves them
// below <publicBase>/assets.
type DiskAssetStorage struct {
	dir        string
	bucket     string
	publicBase string
	now        func() time.Time
	logger     zerolog.Logger
}

func NewDiskAssetStorage(dir, bucket, publicBase string) (*DiskAssetStorage, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving upload dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(abs, bucket), 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskAssetStorage{
		dir:        abs,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/") + "/assets",
		now:        time.Now,
		logger:     log.With().Str("component", "diskStorage").Str("dir", abs).Logger(),
	}, nil
}

// Dir is the root served under /assets.
func (s *DiskAssetStorage) Dir() string {
	return s.dir
}

func (s *DiskAssetStorage) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key, err := AssetKey(folder, filename, s.now())
	if err != nil {
		return "", err
	}
	target, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("creating asset folder: %w", err)
	}
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating asset: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("writing asset: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing asset: %w", err)
	}
	s.logger.Info().Str("key", key).Msg("Asset stored")
	return publicURL(s.publicBase, s.bucket, key), nil
}

func (s *DiskAssetStorage) Delete(ctx context.Context, url string) {
	key, ok := KeyFromURL(url, s.bucket)
	if !ok {
		s.logger.Warn().Str("url", url).Msg("Invalid asset URL, cannot delete")
		return
	}
	target, err := s.path(key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Refusing to delete asset")
		return
	}
	if err := os.Remove(target); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to delete asset")
		return
	}
	s.logger.Info().Str("key", key).Msg("Asset deleted")
}

// path resolves key inside the bucket directory and rejects escapes.
func (s *DiskAssetStorage) path(key string) (string, error) {
	base := filepath.Join(s.dir, s.bucket)
	target := filepath.Join(base, filepath.FromSlash(key))
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("asset key %q escapes storage", key)
	}
	return target, nil
}
