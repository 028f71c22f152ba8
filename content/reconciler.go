// Package content owns the bilingual portfolio model. It merges compiled-in
// defaults, the local snapshot cache and the remote store, applies local
// edits and pushes them back to the store on an authenticated save.
package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/cache"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

const (
	DefaultSavedRevert = 2 * time.Second
	DefaultErrorRevert = 5 * time.Second

	cacheWriteTimeout = 5 * time.Second
)

// Options configures a Reconciler. Store and Cache may be nil: without a
// store every fetch and save reports ErrConfigMissing, without a cache the
// model starts from the defaults.
type Options struct {
	Store    RemoteStore
	Cache    cache.SnapshotCache
	Auth     *auth.Authenticator
	Language models.Language

	SavedRevert time.Duration
	ErrorRevert time.Duration
}

type Reconciler struct {
	store  RemoteStore
	cache  cache.SnapshotCache
	auth   *auth.Authenticator
	logger zerolog.Logger

	savedRevert time.Duration
	errorRevert time.Duration

	// serializes saves so two calls write back to back
	saveMu sync.Mutex

	mu          sync.RWMutex
	data        map[models.Language]models.Snapshot
	lang        models.Language
	loading     bool
	err         error
	session     *auth.Session
	status      SaveStatus
	statusGen   uint64
	revertTimer *time.Timer
	observers   []func(SaveStatus)
}

// New seeds both languages from the cache merged over the defaults. The
// result reports Loading until Init completes.
func New(ctx context.Context, opts Options) *Reconciler {
	r := &Reconciler{
		store:       opts.Store,
		cache:       opts.Cache,
		auth:        opts.Auth,
		logger:      log.With().Str("component", "reconciler").Logger(),
		savedRevert: opts.SavedRevert,
		errorRevert: opts.ErrorRevert,
		data:        make(map[models.Language]models.Snapshot, len(models.Languages)),
		lang:        opts.Language,
		loading:     true,
		session:     &auth.Session{},
	}
	if r.auth == nil {
		r.auth = auth.NewAuthenticator("", "")
	}
	if r.savedRevert <= 0 {
		r.savedRevert = DefaultSavedRevert
	}
	if r.errorRevert <= 0 {
		r.errorRevert = DefaultErrorRevert
	}
	if !r.lang.Valid() {
		r.lang = models.French
	}
	for _, lang := range models.Languages {
		r.data[lang] = MergeSnapshot(r.readCache(ctx, lang), models.Defaults(lang))
	}
	return r
}

// Init fetches both languages from the remote store and merges them over the
// seeded state. A fetch failure is not fatal: the seeded state stays, Err
// reports the failure and the same error is returned.
func (r *Reconciler) Init(ctx context.Context) error {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()

	err := r.fetchAndMerge(ctx, models.Languages...)

	r.mu.Lock()
	r.loading = false
	r.err = err
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn().Err(err).Msg("Using cached/default content")
	}
	return err
}

// Refresh re-runs the fetch and merge step of Init.
func (r *Reconciler) Refresh(ctx context.Context) error {
	return r.Init(ctx)
}

func (r *Reconciler) fetchAndMerge(ctx context.Context, langs ...models.Language) error {
	if r.store == nil {
		return errs.NewConfigMissingError("DATABASE_URL")
	}

	patches := make(map[models.Language]*models.SnapshotPatch, len(langs))
	g, gctx := errgroup.WithContext(ctx)
	for _, lang := range langs {
		lang := lang
		p := &models.SnapshotPatch{}
		patches[lang] = p
		g.Go(func() error {
			info, err := r.store.FetchPersonalInfo(gctx, lang)
			if err != nil {
				return fmt.Errorf("personal info (%s): %w", lang, err)
			}
			p.PersonalInfo = info
			return nil
		})
		g.Go(func() error {
			projects, err := r.store.FetchProjects(gctx, lang)
			if err != nil {
				return fmt.Errorf("projects (%s): %w", lang, err)
			}
			p.Projects = projects
			return nil
		})
		g.Go(func() error {
			experiences, err := r.store.FetchExperiences(gctx, lang)
			if err != nil {
				return fmt.Errorf("experiences (%s): %w", lang, err)
			}
			p.Experiences = experiences
			return nil
		})
		g.Go(func() error {
			education, err := r.store.FetchEducation(gctx, lang)
			if err != nil {
				return fmt.Errorf("education (%s): %w", lang, err)
			}
			p.Education = education
			return nil
		})
		g.Go(func() error {
			skills, err := r.store.FetchSkills(gctx, lang)
			if err != nil {
				return fmt.Errorf("skills (%s): %w", lang, err)
			}
			p.Skills = skills
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errs.NewFetchError(err)
	}

	merged := make(map[models.Language]models.Snapshot, len(langs))
	r.mu.Lock()
	for _, lang := range langs {
		snap := MergeSnapshot(withoutEmptyCollections(patches[lang]), r.data[lang])
		r.data[lang] = snap
		merged[lang] = snap.Clone()
	}
	r.mu.Unlock()

	for lang, snap := range merged {
		r.writeCache(lang, snap)
	}
	return nil
}

func (r *Reconciler) readCache(ctx context.Context, lang models.Language) *models.SnapshotPatch {
	if r.cache == nil {
		return nil
	}
	patch, err := r.cache.Read(ctx, lang)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn().Err(err).Str("lang", lang.String()).Msg("Failed to read content cache")
		}
		return nil
	}
	return patch
}

func (r *Reconciler) writeCache(lang models.Language, snap models.Snapshot) {
	if r.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
	defer cancel()
	if err := r.cache.Write(ctx, lang, snap); err != nil {
		r.logger.Warn().Err(err).Str("lang", lang.String()).Msg("Failed to write content cache")
	}
}

// Accessors

// Snapshot returns a copy of the content of lang.
func (r *Reconciler) Snapshot(lang models.Language) (models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.data[lang]
	if !ok {
		return models.Snapshot{}, errs.NewUnknownLanguageError(string(lang))
	}
	return snap.Clone(), nil
}

func (r *Reconciler) active() models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data[r.lang].Clone()
}

func (r *Reconciler) PersonalInfo() models.PersonalInfo {
	return r.active().PersonalInfo
}

func (r *Reconciler) Projects() []models.Project {
	return r.active().Projects
}

func (r *Reconciler) Experiences() []models.Experience {
	return r.active().Experiences
}

func (r *Reconciler) Education() []models.Education {
	return r.active().Education
}

func (r *Reconciler) Skills() []models.SkillCategory {
	return r.active().Skills
}

func (r *Reconciler) Language() models.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

func (r *Reconciler) SetLanguage(lang models.Language) error {
	if !lang.Valid() {
		return errs.NewUnknownLanguageError(string(lang))
	}
	r.mu.Lock()
	r.lang = lang
	r.mu.Unlock()
	return nil
}

// ToggleLanguage switches between English and French and returns the new
// active language.
func (r *Reconciler) ToggleLanguage() models.Language {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lang = r.lang.Other()
	return r.lang
}

// T looks key up in the UI strings of the active language.
func (r *Reconciler) T(key string) string {
	return models.Translate(r.Language(), key)
}

func (r *Reconciler) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Err returns the last fetch error, if it was not dismissed.
func (r *Reconciler) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func (r *Reconciler) DismissError() {
	r.mu.Lock()
	r.err = nil
	r.mu.Unlock()
}

func (r *Reconciler) SaveStatus() SaveStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Status summarizes the reconciler for admin clients.
func (r *Reconciler) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st := Status{
		Language:      r.lang.String(),
		Loading:       r.loading,
		SaveStatus:    r.status,
		Authenticated: r.session.IsAuthenticated(),
	}
	if r.err != nil {
		st.Error = r.err.Error()
	}
	return st
}

// OnStatusChange registers fn to be called after every save status change.
// fn runs on the goroutine that changed the status and must not block.
func (r *Reconciler) OnStatusChange(fn func(SaveStatus)) {
	r.mu.Lock()
	r.observers = append(r.observers, fn)
	r.mu.Unlock()
}

// Mutations

func (r *Reconciler) UpdatePersonalInfo(info models.PersonalInfo, lang ...models.Language) error {
	info.TechStackIcons = clone(info.TechStackIcons)
	return r.update(lang, func(s *models.Snapshot) { s.PersonalInfo = info })
}

func (r *Reconciler) UpdateProjects(projects []models.Project, lang ...models.Language) error {
	projects = models.CloneProjects(projects)
	return r.update(lang, func(s *models.Snapshot) { s.Projects = projects })
}

func (r *Reconciler) UpdateExperiences(experiences []models.Experience, lang ...models.Language) error {
	experiences = clone(experiences)
	return r.update(lang, func(s *models.Snapshot) { s.Experiences = experiences })
}

func (r *Reconciler) UpdateEducation(education []models.Education, lang ...models.Language) error {
	education = clone(education)
	return r.update(lang, func(s *models.Snapshot) { s.Education = education })
}

func (r *Reconciler) UpdateSkills(skills []models.SkillCategory, lang ...models.Language) error {
	skills = models.CloneSkills(skills)
	return r.update(lang, func(s *models.Snapshot) { s.Skills = skills })
}

// ReplaceSnapshot replaces all five collections of lang at once.
func (r *Reconciler) ReplaceSnapshot(lang models.Language, snap models.Snapshot) error {
	snap = snap.Clone()
	return r.update([]models.Language{lang}, func(s *models.Snapshot) { *s = snap })
}

// ApplyPatch merges patch over the current content of lang.
func (r *Reconciler) ApplyPatch(lang models.Language, patch *models.SnapshotPatch) error {
	return r.update([]models.Language{lang}, func(s *models.Snapshot) { *s = MergeSnapshot(patch, *s) })
}

func (r *Reconciler) update(langs []models.Language, fn func(*models.Snapshot)) error {
	r.mu.Lock()
	lang := r.lang
	if len(langs) > 0 {
		lang = langs[0]
	}
	snap, ok := r.data[lang]
	if !ok {
		r.mu.Unlock()
		return errs.NewUnknownLanguageError(string(lang))
	}
	fn(&snap)
	r.data[lang] = snap
	shadow := snap.Clone()
	r.mu.Unlock()

	r.writeCache(lang, shadow)
	return nil
}

// Authentication

// Login authenticates the reconciler's own session.
func (r *Reconciler) Login(username, password string) bool {
	ok := r.session.Login(r.auth, username, password)
	if !ok {
		r.logger.Warn().Str("username", username).Msg("Rejected login")
	}
	return ok
}

func (r *Reconciler) Logout() {
	r.session.Logout()
}

func (r *Reconciler) IsAuthenticated() bool {
	return r.session.IsAuthenticated()
}

// Saving

// SaveData pushes the current content of langs (both languages, English
// first, when none are given) to the remote store using the reconciler's
// own session.
func (r *Reconciler) SaveData(ctx context.Context, langs ...models.Language) error {
	return r.SaveDataAs(ctx, r.session, langs...)
}

// SaveDataAs is SaveData with a caller-supplied session. The session
// credential is checked against the digest before anything is written.
// After a successful save the saved languages are fetched again and merged.
func (r *Reconciler) SaveDataAs(ctx context.Context, session *auth.Session, langs ...models.Language) error {
	password, ok := session.Credential()
	if !ok {
		return errs.NewNotAuthenticatedError()
	}
	if err := r.auth.VerifyPassword(password); err != nil {
		return err
	}
	langs, err := saveOrder(langs)
	if err != nil {
		return err
	}

	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	r.setStatus(StatusSaving)
	if r.store == nil {
		err := errs.NewConfigMissingError("DATABASE_URL")
		r.logger.Error().Err(err).Msg("Cannot save content")
		r.saveFailed(err)
		return err
	}

	for _, lang := range langs {
		snap, _ := r.Snapshot(lang)
		if err := r.saveLanguage(ctx, lang, snap); err != nil {
			r.logger.Error().Err(err).Str("lang", lang.String()).Msg("Failed to save content")
			r.saveFailed(err)
			return err
		}
		r.logger.Info().Str("lang", lang.String()).Msg("Content saved")
	}

	if err := r.fetchAndMerge(ctx, langs...); err != nil {
		r.logger.Warn().Err(err).Msg("Saved content could not be fetched back")
	}
	r.mu.Lock()
	r.err = nil
	r.mu.Unlock()
	r.setStatus(StatusSaved)
	return nil
}

// saveFailed records err for the error banner and flips the status.
func (r *Reconciler) saveFailed(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
	r.setStatus(StatusError)
}

func (r *Reconciler) saveLanguage(ctx context.Context, lang models.Language, snap models.Snapshot) error {
	if err := r.store.SavePersonalInfo(ctx, lang, snap.PersonalInfo); err != nil {
		return errs.NewSaveError(lang.String(), "personal info", err)
	}
	if err := r.store.SaveProjects(ctx, lang, snap.Projects); err != nil {
		return errs.NewSaveError(lang.String(), "projects", err)
	}
	if err := r.store.SaveExperiences(ctx, lang, snap.Experiences); err != nil {
		return errs.NewSaveError(lang.String(), "experiences", err)
	}
	if err := r.store.SaveEducation(ctx, lang, snap.Education); err != nil {
		return errs.NewSaveError(lang.String(), "education", err)
	}
	if err := r.store.SaveSkills(ctx, lang, snap.Skills); err != nil {
		return errs.NewSaveError(lang.String(), "skills", err)
	}
	return nil
}

func saveOrder(langs []models.Language) ([]models.Language, error) {
	if len(langs) == 0 {
		return []models.Language{models.English, models.French}, nil
	}
	out := make([]models.Language, 0, len(langs))
	for _, lang := range langs {
		if !lang.Valid() {
			return nil, errs.NewUnknownLanguageError(string(lang))
		}
		if !slices.Contains(out, lang) {
			out = append(out, lang)
		}
	}
	return out, nil
}

// setStatus records s and schedules the revert to idle for saved and error.
// Each change bumps statusGen so a timer armed for an older status is a no-op.
func (r *Reconciler) setStatus(s SaveStatus) {
	r.mu.Lock()
	r.status = s
	r.statusGen++
	gen := r.statusGen
	if r.revertTimer != nil {
		r.revertTimer.Stop()
		r.revertTimer = nil
	}
	var delay time.Duration
	switch s {
	case StatusSaved:
		delay = r.savedRevert
	case StatusError:
		delay = r.errorRevert
	}
	if delay > 0 {
		r.revertTimer = time.AfterFunc(delay, func() { r.revertStatus(gen) })
	}
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	notify(observers, s)
}

func (r *Reconciler) revertStatus(gen uint64) {
	r.mu.Lock()
	if r.statusGen != gen {
		r.mu.Unlock()
		return
	}
	r.status = StatusIdle
	r.statusGen++
	r.revertTimer = nil
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	notify(observers, StatusIdle)
}

func notify(observers []func(SaveStatus), s SaveStatus) {
	for _, fn := range observers {
		fn(s)
	}
}

// Close stops a pending status revert.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.revertTimer != nil {
		r.revertTimer.Stop()
		r.revertTimer = nil
	}
}
