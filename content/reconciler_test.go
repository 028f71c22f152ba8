package content

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

const (
	testRevert = 100 * time.Millisecond
	waitFor    = 2 * time.Second
	tick       = 5 * time.Millisecond
)

type statusRecorder struct {
	mu   sync.Mutex
	seen []SaveStatus
}

func (s *statusRecorder) record(st SaveStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, st)
}

func (s *statusRecorder) statuses() []SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SaveStatus(nil), s.seen...)
}

func newTestReconciler(t *testing.T, store RemoteStore, c *memoryCache) *Reconciler {
	t.Helper()
	opts := Options{
		Store:       store,
		SavedRevert: testRevert,
		ErrorRevert: testRevert,
	}
	if c != nil {
		opts.Cache = c
	}
	r := New(context.Background(), opts)
	t.Cleanup(r.Close)
	return r
}

func TestNew_SeedsDefaults(t *testing.T) {
	r := newTestReconciler(t, nil, newMemoryCache())

	assert.True(t, r.Loading())
	assert.Equal(t, models.French, r.Language())
	assert.Equal(t, StatusIdle, r.SaveStatus())
	assert.Equal(t, models.Defaults(models.French).PersonalInfo, r.PersonalInfo())

	en, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Equal(t, models.Defaults(models.English), en)
}

func TestNew_SeedsFromCache(t *testing.T) {
	c := newMemoryCache()
	cached := models.Defaults(models.English)
	cached.PersonalInfo.Name = "Cached Name"
	cached.Projects = cached.Projects[:1]
	require.NoError(t, c.Write(context.Background(), models.English, cached))

	r := newTestReconciler(t, nil, c)

	en, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Equal(t, "Cached Name", en.PersonalInfo.Name)
	assert.Len(t, en.Projects, 1)
}

func TestInit_WithoutStoreKeepsFullModel(t *testing.T) {
	r := newTestReconciler(t, nil, newMemoryCache())

	err := r.Init(context.Background())

	require.Error(t, err)
	assert.True(t, errs.IsConfigMissing(err))
	assert.False(t, r.Loading())
	assert.True(t, errs.IsConfigMissing(r.Err()))
	for _, lang := range models.Languages {
		snap, err := r.Snapshot(lang)
		require.NoError(t, err)
		assert.Equal(t, models.Defaults(lang), snap)
	}

	r.DismissError()
	assert.NoError(t, r.Err())
}

func TestInit_FetchFailureKeepsCachedState(t *testing.T) {
	store := newMemoryStore()
	store.fetchErr = errBackendDown
	c := newMemoryCache()
	cached := models.Defaults(models.French)
	cached.PersonalInfo.Bio = "from cache"
	require.NoError(t, c.Write(context.Background(), models.French, cached))

	r := newTestReconciler(t, store, c)
	err := r.Init(context.Background())

	require.Error(t, err)
	assert.True(t, errs.IsFetchFailed(err))
	assert.ErrorIs(t, err, errBackendDown)
	assert.False(t, r.Loading())
	assert.Equal(t, "from cache", r.PersonalInfo().Bio)
}

func TestInit_MergesRemoteAndWritesCache(t *testing.T) {
	store := newMemoryStore()
	remote := models.Defaults(models.English)
	remote.PersonalInfo.Name = "Remote Name"
	remote.Projects = []models.Project{{ID: 9, Title: "Only remote", Tags: []string{"go"}, Image: "x.png"}}
	store.seed(models.English, remote)
	c := newMemoryCache()

	r := newTestReconciler(t, store, c)
	require.NoError(t, r.Init(context.Background()))

	assert.False(t, r.Loading())
	assert.NoError(t, r.Err())

	en, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Equal(t, "Remote Name", en.PersonalInfo.Name)
	assert.Equal(t, remote.Projects, en.Projects)

	fr, err := r.Snapshot(models.French)
	require.NoError(t, err)
	assert.Equal(t, models.Defaults(models.French), fr, "nothing remote for fr")

	cachedEN, ok := c.get(models.English)
	require.True(t, ok)
	assert.Equal(t, en, cachedEN)
	_, ok = c.get(models.French)
	assert.True(t, ok)
}

func TestMutations_DefaultToActiveLanguage(t *testing.T) {
	c := newMemoryCache()
	r := newTestReconciler(t, nil, c)

	projects := []models.Project{{ID: models.NewEntityID(), Title: "New", Tags: []string{}, Image: "n.png"}}
	require.NoError(t, r.UpdateProjects(projects))
	assert.Equal(t, projects, r.Projects())

	cached, ok := c.get(models.French)
	require.True(t, ok)
	assert.Equal(t, projects, cached.Projects)

	en, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Equal(t, models.Defaults(models.English).Projects, en.Projects)

	skills := []models.SkillCategory{{Title: "Ops", Icon: "Server", Skills: []string{"k8s"}}}
	require.NoError(t, r.UpdateSkills(skills, models.English))
	en, err = r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Equal(t, skills, en.Skills)

	assert.Error(t, r.UpdateEducation(nil, models.Language("de")))
}

func TestLanguageAndTranslations(t *testing.T) {
	r := newTestReconciler(t, nil, nil)

	assert.Equal(t, models.English, r.ToggleLanguage())
	assert.Equal(t, models.Translate(models.English, "nav_home"), r.T("nav_home"))
	assert.Equal(t, "no_such_key", r.T("no_such_key"))

	require.NoError(t, r.SetLanguage(models.French))
	assert.Equal(t, models.French, r.Language())
	assert.Error(t, r.SetLanguage("es"))
}

func TestLogin(t *testing.T) {
	r := newTestReconciler(t, nil, nil)

	assert.False(t, r.Login("root", "password"))
	assert.False(t, r.Login("admin", "wrong"))
	assert.False(t, r.IsAuthenticated())

	assert.True(t, r.Login("admin", "password"))
	assert.True(t, r.IsAuthenticated())

	r.Logout()
	assert.False(t, r.IsAuthenticated())
}

func TestSaveData_RequiresAuthentication(t *testing.T) {
	store := newMemoryStore()
	r := newTestReconciler(t, store, nil)

	err := r.SaveData(context.Background())

	assert.True(t, errs.IsNotAuthenticated(err))
	assert.Empty(t, store.saved())
	assert.Equal(t, StatusIdle, r.SaveStatus())
}

func TestSaveDataAs_ReverifiesCredential(t *testing.T) {
	store := newMemoryStore()
	r := newTestReconciler(t, store, nil)

	err := r.SaveDataAs(context.Background(), auth.NewVerifiedSession("not-the-password"))

	assert.True(t, errs.IsInvalidPassword(err))
	assert.Empty(t, store.saved())
}

func TestSaveData_SavesBothLanguagesAndReverts(t *testing.T) {
	store := newMemoryStore()
	r := newTestReconciler(t, store, newMemoryCache())
	rec := &statusRecorder{}
	r.OnStatusChange(rec.record)
	require.True(t, r.Login("admin", "password"))

	require.NoError(t, r.SaveData(context.Background()))

	assert.Equal(t, []models.Language{models.English, models.French}, store.saved())
	assert.Eventually(t, func() bool { return r.SaveStatus() == StatusIdle }, waitFor, tick)
	assert.Equal(t, []SaveStatus{StatusSaving, StatusSaved, StatusIdle}, rec.statuses())
}

func TestSaveData_ErrorStatusSequence(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errBackendDown
	r := newTestReconciler(t, store, nil)
	rec := &statusRecorder{}
	r.OnStatusChange(rec.record)
	require.True(t, r.Login("admin", "password"))

	err := r.SaveData(context.Background(), models.French)

	require.Error(t, err)
	assert.True(t, errs.IsSaveFailed(err))
	assert.ErrorIs(t, err, errBackendDown)
	assert.Eventually(t, func() bool { return r.SaveStatus() == StatusIdle }, waitFor, tick)
	assert.Equal(t, []SaveStatus{StatusSaving, StatusError, StatusIdle}, rec.statuses())
}

func TestSaveData_WithoutStoreIsConfigError(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	require.True(t, r.Login("admin", "password"))

	err := r.SaveData(context.Background())

	assert.True(t, errs.IsConfigMissing(err))
	assert.Equal(t, StatusError, r.SaveStatus())
}

func TestSaveData_UsesLatestStateAndRefetches(t *testing.T) {
	store := newMemoryStore()
	store.seed(models.English, models.Defaults(models.English))
	c := newMemoryCache()
	r := newTestReconciler(t, store, c)
	require.NoError(t, r.Init(context.Background()))
	require.True(t, r.Login("admin", "password"))

	en, err := r.Snapshot(models.English)
	require.NoError(t, err)
	kept := en.Projects[1:]
	info := en.PersonalInfo
	info.Title = "Edited just before save"
	require.NoError(t, r.UpdateProjects(kept, models.English))
	require.NoError(t, r.UpdatePersonalInfo(info, models.English))

	require.NoError(t, r.SaveData(context.Background(), models.English))

	assert.Equal(t, []models.Language{models.English}, store.saved())
	remote, err := store.FetchProjects(context.Background(), models.English)
	require.NoError(t, err)
	assert.Equal(t, kept, remote)

	got, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Equal(t, "Edited just before save", got.PersonalInfo.Title)
	assert.Equal(t, kept, got.Projects)

	cached, ok := c.get(models.English)
	require.True(t, ok)
	assert.Equal(t, got, cached)
}

func TestSaveData_UnknownLanguage(t *testing.T) {
	r := newTestReconciler(t, newMemoryStore(), nil)
	require.True(t, r.Login("admin", "password"))

	err := r.SaveData(context.Background(), models.Language("de"))

	assert.ErrorIs(t, err, errs.ErrUnknownLanguage)
	assert.Equal(t, StatusIdle, r.SaveStatus())
}

func TestStatusRevert_StaleTimerIsIgnored(t *testing.T) {
	r := newTestReconciler(t, nil, nil)

	r.setStatus(StatusSaved)
	r.setStatus(StatusSaving)

	time.Sleep(3 * testRevert)
	assert.Equal(t, StatusSaving, r.SaveStatus())
}

func TestReplaceSnapshot(t *testing.T) {
	r := newTestReconciler(t, nil, nil)
	snap := models.Defaults(models.English)
	snap.Experiences = nil
	snap.PersonalInfo.Location = "Lyon"

	require.NoError(t, r.ReplaceSnapshot(models.French, snap))

	got, err := r.Snapshot(models.French)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", got.PersonalInfo.Location)
	assert.Nil(t, got.Experiences)
	assert.Equal(t, StatusIdle, r.Status().SaveStatus)
}

func TestApplyPatch(t *testing.T) {
	c := newMemoryCache()
	r := newTestReconciler(t, nil, c)
	before, err := r.Snapshot(models.French)
	require.NoError(t, err)

	role := "Ingénieur logiciel"
	err = r.ApplyPatch(models.French, &models.SnapshotPatch{
		PersonalInfo: &models.PersonalInfoPatch{Role: &role},
		Projects:     []models.Project{{ID: 99, Title: "Nouveau", Tags: []string{"go"}}},
	})
	require.NoError(t, err)

	got, err := r.Snapshot(models.French)
	require.NoError(t, err)
	assert.Equal(t, role, got.PersonalInfo.Role)
	assert.Equal(t, before.PersonalInfo.Name, got.PersonalInfo.Name)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, int64(99), got.Projects[0].ID)
	assert.Equal(t, before.Skills, got.Skills)

	cached, ok := c.get(models.French)
	require.True(t, ok)
	assert.Equal(t, role, cached.PersonalInfo.Role)

	en, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.NotEqual(t, role, en.PersonalInfo.Role)

	assert.Error(t, r.ApplyPatch(models.Language("de"), &models.SnapshotPatch{}))
}

func TestEmptiedCollectionSurvivesCacheReload(t *testing.T) {
	c := newMemoryCache()
	r := newTestReconciler(t, nil, c)
	require.NoError(t, r.UpdateProjects([]models.Project{}, models.English))
	require.NoError(t, r.UpdateExperiences([]models.Experience{}, models.English))

	restarted := newTestReconciler(t, nil, c)
	_ = restarted.Init(context.Background())

	en, err := restarted.Snapshot(models.English)
	require.NoError(t, err)
	assert.NotNil(t, en.Projects)
	assert.Empty(t, en.Projects)
	assert.Empty(t, en.Experiences)
	assert.Equal(t, models.Defaults(models.English).Education, en.Education)
}

func TestSaveData_EmptiedCollectionIsClearedRemotely(t *testing.T) {
	store := newMemoryStore()
	store.seed(models.English, models.Defaults(models.English))
	c := newMemoryCache()
	r := newTestReconciler(t, store, c)
	require.NoError(t, r.Init(context.Background()))
	require.True(t, r.Login("admin", "password"))

	require.NoError(t, r.UpdateProjects([]models.Project{}, models.English))
	require.NoError(t, r.SaveData(context.Background(), models.English))

	remote, err := store.FetchProjects(context.Background(), models.English)
	require.NoError(t, err)
	assert.Empty(t, remote)

	got, err := r.Snapshot(models.English)
	require.NoError(t, err)
	assert.Empty(t, got.Projects, "refetch of an empty table keeps the emptied list")
}

func TestSaveData_FailureSetsErrorBanner(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errBackendDown
	r := newTestReconciler(t, store, nil)
	require.True(t, r.Login("admin", "password"))

	require.Error(t, r.SaveData(context.Background(), models.English))

	st := r.Status()
	assert.NotEmpty(t, st.Error)
	assert.Contains(t, st.Error, errBackendDown.Error())
	assert.ErrorIs(t, r.Err(), errBackendDown)

	// the banner outlives the status revert until dismissed
	assert.Eventually(t, func() bool { return r.SaveStatus() == StatusIdle }, waitFor, tick)
	assert.NotEmpty(t, r.Status().Error)
	r.DismissError()
	assert.Empty(t, r.Status().Error)

	store.saveErr = nil
	require.NoError(t, r.SaveData(context.Background(), models.English))
	assert.NoError(t, r.Err())
}
