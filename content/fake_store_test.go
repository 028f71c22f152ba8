package content

import (
	"context"
	"errors"
	"sync"

	"github.com/rpupo63/portfolio-backend/cache"
	"github.com/rpupo63/portfolio-backend/models"
)

var errBackendDown = errors.New("backend down")

// memoryStore is an in-memory RemoteStore with the same replace semantics as
// the database repositories.
type memoryStore struct {
	mu        sync.Mutex
	info      map[models.Language]*models.PersonalInfoPatch
	snapshots map[models.Language]models.Snapshot
	fetchErr  error
	saveErr   error
	saves     []models.Language
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		info:      map[models.Language]*models.PersonalInfoPatch{},
		snapshots: map[models.Language]models.Snapshot{},
	}
}

func (m *memoryStore) seed(lang models.Language, snap models.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	patch := snap.PersonalInfo.Patch()
	m.info[lang] = &patch
	m.snapshots[lang] = snap.Clone()
}

func (m *memoryStore) saved() []models.Language {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Language(nil), m.saves...)
}

func (m *memoryStore) FetchPersonalInfo(_ context.Context, lang models.Language) (*models.PersonalInfoPatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.info[lang], nil
}

func (m *memoryStore) FetchProjects(_ context.Context, lang models.Language) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return models.CloneProjects(m.snapshots[lang].Projects), nil
}

func (m *memoryStore) FetchExperiences(_ context.Context, lang models.Language) ([]models.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return clone(m.snapshots[lang].Experiences), nil
}

func (m *memoryStore) FetchEducation(_ context.Context, lang models.Language) ([]models.Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return clone(m.snapshots[lang].Education), nil
}

func (m *memoryStore) FetchSkills(_ context.Context, lang models.Language) ([]models.SkillCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return models.CloneSkills(m.snapshots[lang].Skills), nil
}

func (m *memoryStore) SavePersonalInfo(_ context.Context, lang models.Language, info models.PersonalInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	patch := info.Patch()
	m.info[lang] = &patch
	snap := m.snapshots[lang]
	snap.PersonalInfo = info
	m.snapshots[lang] = snap
	m.saves = append(m.saves, lang)
	return nil
}

func (m *memoryStore) SaveProjects(_ context.Context, lang models.Language, projects []models.Project) error {
	return m.put(lang, func(s *models.Snapshot) { s.Projects = models.CloneProjects(projects) })
}

func (m *memoryStore) SaveExperiences(_ context.Context, lang models.Language, experiences []models.Experience) error {
	return m.put(lang, func(s *models.Snapshot) { s.Experiences = clone(experiences) })
}

func (m *memoryStore) SaveEducation(_ context.Context, lang models.Language, education []models.Education) error {
	return m.put(lang, func(s *models.Snapshot) { s.Education = clone(education) })
}

func (m *memoryStore) SaveSkills(_ context.Context, lang models.Language, skills []models.SkillCategory) error {
	return m.put(lang, func(s *models.Snapshot) { s.Skills = models.CloneSkills(skills) })
}

func (m *memoryStore) put(lang models.Language, fn func(*models.Snapshot)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	snap := m.snapshots[lang]
	fn(&snap)
	m.snapshots[lang] = snap
	return nil
}

// memoryCache is a SnapshotCache kept in a map.
type memoryCache struct {
	mu     sync.Mutex
	data   map[models.Language]models.Snapshot
	writes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[models.Language]models.Snapshot{}}
}

func (c *memoryCache) Read(_ context.Context, lang models.Language) (*models.SnapshotPatch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.data[lang]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	patch := snap.Patch()
	return &patch, nil
}

func (c *memoryCache) Write(_ context.Context, lang models.Language, snap models.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[lang] = snap.Clone()
	c.writes++
	return nil
}

func (c *memoryCache) get(lang models.Language) (models.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.data[lang]
	return snap, ok
}
