package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectClient struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	deleteErr error
	deleted   []string
}

func newFakeObjectClient() *fakeObjectClient {
	return &fakeObjectClient{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	delete(f.objects, key)
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

var keyPattern = regexp.MustCompile(`^avatars/1700000000000-[0-9a-f]{8}\.jpg$`)

func TestAssetKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key, err := AssetKey("", "My Photo.JPG", now)
	require.NoError(t, err)
	assert.Regexp(t, keyPattern, key)

	key, err = AssetKey("/projects/", "noext", now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "projects/1700000000000-"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	other, err := AssetKey("projects", "noext", now)
	require.NoError(t, err)
	assert.NotEqual(t, key, other, "random part differs")

	_, err = AssetKey("../etc", "x.png", now)
	assert.Error(t, err)
	_, err = AssetKey("a/../../b", "x.png", now)
	assert.Error(t, err)
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		url string
		key string
		ok  bool
	}{
		{"https://s3.example.com/portfolio-images/avatars/1-abc.png", "avatars/1-abc.png", true},
		{"https://s3.example.com/portfolio-images/avatars/1-abc.png?v=2", "avatars/1-abc.png", true},
		{"https://s3.example.com/other/avatars/1-abc.png", "", false},
		{"https://s3.example.com/portfolio-images/", "", false},
	}
	for _, tt := range tests {
		key, ok := KeyFromURL(tt.url, DefaultBucket)
		assert.Equal(t, tt.ok, ok, tt.url)
		assert.Equal(t, tt.key, key, tt.url)
	}
}

func TestS3AssetStorage_UploadAndDelete(t *testing.T) {
	client := newFakeObjectClient()
	storage := NewS3AssetStorage(client, "", "https://s3.example.com/")
	storage.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := storage.Upload(context.Background(), "", "me.jpg", "", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	prefix := "https://s3.example.com/portfolio-images/"
	require.True(t, strings.HasPrefix(url, prefix), url)
	key := strings.TrimPrefix(url, prefix)
	assert.Regexp(t, keyPattern, key)
	assert.Equal(t, []byte("jpeg-bytes"), client.objects[DefaultBucket+"/"+key])
	assert.Equal(t, DefaultContentType, client.types[DefaultBucket+"/"+key])

	storage.Delete(context.Background(), url)
	assert.Equal(t, []string{key}, client.deleted)
	assert.Empty(t, client.objects)
}

func TestS3AssetStorage_DeleteIsBestEffort(t *testing.T) {
	client := newFakeObjectClient()
	client.deleteErr = errors.New("access denied")
	storage := NewS3AssetStorage(client, "bucket", "https://s3.example.com")

	assert.NotPanics(t, func() {
		storage.Delete(context.Background(), "https://s3.example.com/bucket/avatars/x.png")
		storage.Delete(context.Background(), "not a url")
	})
	assert.Empty(t, client.deleted)
}

func TestDiskAssetStorage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskAssetStorage(dir, "", "http://localhost:8080/")
	require.NoError(t, err)

	url, err := storage.Upload(context.Background(), "projects", "shot.webp", "image/webp", strings.NewReader("webp"))
	require.NoError(t, err)

	prefix := "http://localhost:8080/assets/portfolio-images/"
	require.True(t, strings.HasPrefix(url, prefix), url)
	key := strings.TrimPrefix(url, prefix)
	path := filepath.Join(dir, DefaultBucket, filepath.FromSlash(key))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "webp", string(data))

	storage.Delete(context.Background(), url)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	outside := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	storage.Delete(context.Background(), "http://localhost:8080/assets/portfolio-images/../keep.txt")
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
