package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
)

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage(" FR ")
	require.NoError(t, err)
	assert.Equal(t, French, lang)

	lang, err = ParseLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, English, lang)

	_, err = ParseLanguage("de")
	assert.ErrorIs(t, err, errs.ErrUnknownLanguage)

	assert.True(t, English.Valid())
	assert.False(t, Language("de").Valid())
	assert.Equal(t, French, English.Other())
	assert.Equal(t, English, French.Other())
	assert.Equal(t, "portfolio_data_fr", French.CacheKey())
}

func TestParseIconKind(t *testing.T) {
	assert.Equal(t, IconLayout, ParseIconKind("Layout"))
	assert.Equal(t, IconServer, ParseIconKind("Server"))
	assert.Equal(t, IconSmartphone, ParseIconKind("Smartphone"))
	assert.Equal(t, IconCode2, ParseIconKind("Database"))
	assert.Equal(t, IconCode2, ParseIconKind(""))
	assert.Equal(t, "Code2", IconKind(42).String())
	assert.Equal(t, IconServer, SkillCategory{Icon: "Server"}.IconKind())
}

func TestPersonalInfoRecord(t *testing.T) {
	info := Defaults(English).PersonalInfo
	info.ResumeURL = ""

	patch := info.Patch()
	assert.Nil(t, patch.ResumeURL)

	rec := patch.ToRecord(French)
	assert.Equal(t, "fr", rec.Lang)
	assert.Equal(t, PersonalInfoFromRecord(rec), patch)
}

func TestProjectRecord(t *testing.T) {
	p := Project{ID: 7, Title: "Site", Description: "d", Image: "i.png"}
	rec := p.ToRecord(English)
	assert.Nil(t, rec.Link)
	assert.Nil(t, rec.Github)
	assert.NotNil(t, rec.Tags)

	back := ProjectFromRecord(rec)
	assert.Equal(t, []string{}, back.Tags)
	back.Tags = nil
	assert.Equal(t, p, back)
}

func TestSkillRecord(t *testing.T) {
	s := SkillCategory{Title: "Back-end", Icon: "Server", Skills: []string{"Go"}}
	rec := s.ToRecord(French, 2)
	assert.Equal(t, 2, rec.DisplayOrder)
	assert.Equal(t, s, SkillCategoryFromRecord(rec))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Home", Translate(English, "nav_home"))
	assert.NotEqual(t, "Home", Translate(French, "nav_home"))
	assert.Equal(t, "missing_key", Translate(French, "missing_key"))

	table := Translations(English)
	table["nav_home"] = "changed"
	assert.Equal(t, "Home", Translate(English, "nav_home"))
}

func TestDefaults(t *testing.T) {
	en := Defaults(English)
	fr := Defaults(French)
	assert.NotEqual(t, en.PersonalInfo.Bio, fr.PersonalInfo.Bio)
	assert.NotEmpty(t, en.Projects)
	assert.Len(t, en.Skills, 3)

	en.Projects[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Defaults(English).Projects[0].Title)
}

func TestSnapshotPatch(t *testing.T) {
	snap := Snapshot{PersonalInfo: Defaults(English).PersonalInfo}
	patch := snap.Patch()
	require.NotNil(t, patch.PersonalInfo)
	assert.NotNil(t, patch.Projects)
	assert.Empty(t, patch.Projects)
}

func TestNewEntityID(t *testing.T) {
	prev := NewEntityID()
	for i := 0; i < 100; i++ {
		next := NewEntityID()
		assert.Greater(t, next, prev)
		prev = next
	}
}
