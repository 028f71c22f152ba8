package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBucket      = "portfolio-images"
	DefaultFolder      = "avatars"
	DefaultContentType = "image/png"
)

// AssetStorage stores uploaded images and serves them from a public URL.
type AssetStorage interface {
	// Upload stores body under folder and returns its public URL.
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
	// Delete removes the asset behind a public URL. Failures are logged, not
	// returned: a stale image must never block a content edit.
	Delete(ctx context.Context, url string)
}

// AssetKey builds the object key "<folder>/<unix-ms>-<random>.<ext>".
// The extension comes from filename and defaults to png.
func AssetKey(folder, filename string, now time.Time) (string, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = DefaultFolder
	}
	if path.Clean(folder) != folder || strings.HasPrefix(folder, "..") {
		return "", fmt.Errorf("invalid asset folder %q", folder)
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s.%s", folder, now.UnixMilli(), random, extension(filename)), nil
}

func extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	var b strings.Builder
	for _, r := range ext {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "png"
	}
	return b.String()
}

// KeyFromURL recovers the object key of a public URL by splitting on
// "/<bucket>/".
func KeyFromURL(url, bucket string) (string, bool) {
	parts := strings.SplitN(url, "/"+bucket+"/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	key := parts[1]
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	return key, key != ""
}

func publicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}
