package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/content"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

const saveTimeout = 60 * time.Second

type adminHandler struct {
	responder  Responder
	logger     zerolog.Logger
	reconciler *content.Reconciler
}

func newAdminHandler(reconciler *content.Reconciler) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		reconciler: reconciler,
	}
}

// getStatus reports loading, fetch error and save status
// @Summary Get reconciler status
// @Tags Admin
// @Produce json
// @Success 200 {object} content.Status
// @Router /api/admin/status [get]
func (h adminHandler) getStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.reconciler.Status())
	}
}

func (h adminHandler) getSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := pathLanguage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		snapshot, err := h.reconciler.Snapshot(lang)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, snapshot)
	}
}

// setLanguage changes the active language
// @Summary Set active language
// @Tags Admin
// @Accept json
// @Param body body LanguageRequest true "Language"
// @Success 200 {object} content.Status
// @Router /api/admin/language [put]
func (h adminHandler) setLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("language", err))
			return
		}
		lang, err := models.ParseLanguage(req.Lang)
		if err != nil {
			h.responder.WriteError(w, errs.NewUnknownLanguageError(req.Lang))
			return
		}
		if err := h.reconciler.SetLanguage(lang); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, h.reconciler.Status())
	}
}

func (h adminHandler) toggleLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.reconciler.ToggleLanguage()
		h.responder.WriteJSON(w, h.reconciler.Status())
	}
}

// updateCollection replaces one collection of a language locally. Nothing
// reaches the remote store until /api/admin/save.
// @Summary Edit a collection
// @Tags Admin
// @Accept json
// @Produce json
// @Param lang path string true "Language (en or fr)"
// @Param collection path string true "personal-info, projects, experiences, education or skills"
// @Success 200 {object} models.Snapshot "Updated content of the language"
// @Failure 400 {object} ErrorResponse "Malformed payload"
// @Failure 404 {object} ErrorResponse "Unknown language or collection"
// @Router /api/admin/{lang}/{collection} [put]
func (h adminHandler) updateCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := pathLanguage(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		collection := chi.URLParam(r, "collection")
		r.Body = http.MaxBytesReader(w, r.Body, maxPortfolioBodySize)
		decoder := json.NewDecoder(r.Body)

		switch collection {
		case "personal-info":
			var info models.PersonalInfo
			if err = decoder.Decode(&info); err == nil {
				err = h.reconciler.UpdatePersonalInfo(info, lang)
			}
		case "projects":
			var projects []models.Project
			if err = decoder.Decode(&projects); err == nil {
				assignProjectIDs(projects)
				err = h.reconciler.UpdateProjects(projects, lang)
			}
		case "experiences":
			var experiences []models.Experience
			if err = decoder.Decode(&experiences); err == nil {
				for i := range experiences {
					if experiences[i].ID == 0 {
						experiences[i].ID = models.NewEntityID()
					}
				}
				err = h.reconciler.UpdateExperiences(experiences, lang)
			}
		case "education":
			var education []models.Education
			if err = decoder.Decode(&education); err == nil {
				for i := range education {
					if education[i].ID == 0 {
						education[i].ID = models.NewEntityID()
					}
				}
				err = h.reconciler.UpdateEducation(education, lang)
			}
		case "skills":
			var skills []models.SkillCategory
			if err = decoder.Decode(&skills); err == nil {
				err = h.reconciler.UpdateSkills(skills, lang)
			}
		default:
			h.responder.WriteError(w, errs.NewNotFoundError(fmt.Sprintf("unknown collection %q", collection)))
			return
		}

		if err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
				h.responder.WriteValidationError(w, collection, "malformed "+collection+" payload")
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("lang", lang.String()).Str("collection", collection).Msg("Collection updated")
		snapshot, err := h.reconciler.Snapshot(lang)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, snapshot)
	}
}

func assignProjectIDs(projects []models.Project) {
	for i := range projects {
		if projects[i].ID == 0 {
			projects[i].ID = models.NewEntityID()
		}
		if projects[i].Tags == nil {
			projects[i].Tags = []string{}
		}
	}
}

// save pushes the edited content to the remote store
// @Summary Save content
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body SaveRequest true "Admin password and optional language"
// @Success 200 {object} content.Status
// @Failure 401 {object} ErrorResponse "Password required"
// @Failure 403 {object} ErrorResponse "Invalid password"
// @Failure 500 {object} ErrorResponse "Save failed"
// @Router /api/admin/save [post]
func (h adminHandler) save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("save", err))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewPasswordRequiredError())
			return
		}

		var langs []models.Language
		if req.Lang != "" {
			lang, err := models.ParseLanguage(req.Lang)
			if err != nil {
				h.responder.WriteError(w, errs.NewUnknownLanguageError(req.Lang))
				return
			}
			langs = append(langs, lang)
		}

		if h.responder.CheckContextTimeout(w, r, saveTimeout) {
			return
		}

		if subject, err := ctxGetSubject(r.Context()); err == nil {
			h.logger.Info().Str("subject", subject).Interface("langs", langs).Msg("Saving content")
		}

		if err := h.reconciler.SaveDataAs(r.Context(), auth.NewVerifiedSession(req.Password), langs...); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, h.reconciler.Status())
	}
}

// refresh re-fetches both languages from the remote store. A failed fetch
// still answers 200: the status carries the error and cached content stays.
func (h adminHandler) refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.responder.CheckContextTimeout(w, r, saveTimeout) {
			return
		}
		if err := h.reconciler.Refresh(r.Context()); err != nil {
			h.logger.Warn().Err(err).Msg("Refresh failed")
		}
		h.responder.WriteJSON(w, h.reconciler.Status())
	}
}

func (h adminHandler) dismissError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.reconciler.DismissError()
		w.WriteHeader(http.StatusNoContent)
	}
}

func pathLanguage(r *http.Request) (models.Language, error) {
	raw := chi.URLParam(r, "lang")
	lang, err := models.ParseLanguage(raw)
	if err != nil {
		return "", errs.NewUnknownLanguageError(raw)
	}
	return lang, nil
}
