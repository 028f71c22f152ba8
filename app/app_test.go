package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

func TestDSN(t *testing.T) {
	assert.Empty(t, DSN(map[string]string{}))
	assert.Equal(t, "postgres://u@h/db", DSN(map[string]string{"DATABASE_URL": "postgres://u@h/db"}))

	supa := DSN(map[string]string{
		"DB_TYPE":              "supa",
		"SUPABASE_DB_HOST":     "db.example.com",
		"SUPABASE_DB_USER":     "postgres",
		"SUPABASE_DB_PASSWORD": "secret",
		"SUPABASE_DB_NAME":     "portfolio",
	})
	assert.Equal(t, "host=db.example.com user=postgres password=secret dbname=portfolio port=5432 sslmode=require", supa)

	assert.Empty(t, DSN(map[string]string{"DB_TYPE": "supa"}))
}

func TestNew_Offline(t *testing.T) {
	dir := t.TempDir()
	c := map[string]string{
		"CACHE_DIR":        filepath.Join(dir, "cache"),
		"UPLOAD_DIR":       filepath.Join(dir, "uploads"),
		"JWT_SECRET":       "test-secret",
		"DEFAULT_LANGUAGE": "en",
		"BASE_URL":         "https://api.example.com",
	}

	a, err := New(context.Background(), c)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.DB)
	assert.Equal(t, models.English, a.Reconciler.Language())
	assert.True(t, a.Auth.Login(auth.DefaultUsername, "password"))
	assert.Equal(t, filepath.Join(dir, "uploads"), a.AssetDir)
	assert.IsType(t, &services.DiskAssetStorage{}, a.Assets)

	err = a.Reconciler.Init(context.Background())
	assert.Error(t, err)
	assert.False(t, a.Reconciler.Loading())
}

func TestNew_RejectsUnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	_, err := New(context.Background(), map[string]string{
		"CACHE_DIR":        filepath.Join(dir, "cache"),
		"UPLOAD_DIR":       filepath.Join(dir, "uploads"),
		"DEFAULT_LANGUAGE": "de",
	})
	assert.Error(t, err)
}

func TestNew_GeneratesUnrelatedTokenSecrets(t *testing.T) {
	newApp := func() *App {
		dir := t.TempDir()
		a, err := New(context.Background(), map[string]string{
			"CACHE_DIR":  filepath.Join(dir, "cache"),
			"UPLOAD_DIR": filepath.Join(dir, "uploads"),
		})
		require.NoError(t, err)
		t.Cleanup(a.Close)
		return a
	}
	first, second := newApp(), newApp()

	token, _, err := first.Tokens.Issue(auth.DefaultUsername)
	require.NoError(t, err)
	_, err = first.Tokens.Parse(token)
	require.NoError(t, err)
	_, err = second.Tokens.Parse(token)
	assert.Error(t, err)
}
