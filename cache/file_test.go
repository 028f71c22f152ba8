package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/models"
)

func TestFileCache_WriteRead(t *testing.T) {
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	ctx := context.Background()

	snap := models.Defaults(models.French)
	snap.PersonalInfo.Name = "Cached Name"
	require.NoError(t, c.Write(ctx, models.French, snap))

	patch, err := c.Read(ctx, models.French)
	require.NoError(t, err)
	require.NotNil(t, patch.PersonalInfo)
	assert.Equal(t, "Cached Name", *patch.PersonalInfo.Name)
	assert.Equal(t, snap.Projects, patch.Projects)
	assert.Equal(t, snap.Skills, patch.Skills)

	_, err = c.Read(ctx, models.English)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestFileCache_KeyLayout(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	require.NoError(t, c.Write(context.Background(), models.English, models.Defaults(models.English)))

	_, err = os.Stat(filepath.Join(dir, "portfolio_data_en.json"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileCache_CorruptIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio_data_fr.json"), []byte("{not json"), 0o644))

	patch, err := c.Read(context.Background(), models.French)
	assert.Nil(t, patch)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestFileCache_PartialSnapshot(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	raw := `{"personalInfo":{"name":"Only Name"},"skills":[{"title":"Go","icon":"Server","skills":["chi"]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio_data_en.json"), []byte(raw), 0o644))

	patch, err := c.Read(context.Background(), models.English)
	require.NoError(t, err)
	assert.Equal(t, "Only Name", *patch.PersonalInfo.Name)
	assert.Nil(t, patch.PersonalInfo.Bio)
	assert.Nil(t, patch.Projects)
	assert.Len(t, patch.Skills, 1)
}

func TestFileCache_EmptyCollectionIsKept(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	snap := models.Defaults(models.English)
	snap.Projects = []models.Project{}
	snap.Experiences = nil
	require.NoError(t, c.Write(ctx, models.English, snap))

	patch, err := c.Read(ctx, models.English)
	require.NoError(t, err)
	assert.NotNil(t, patch.Projects, "an emptied list is present, not missing")
	assert.Empty(t, patch.Projects)
	assert.Nil(t, patch.Experiences)
}
