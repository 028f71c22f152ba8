package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
)

const maxUploadSize = 10 << 20

type assetHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   services.AssetStorage
}

func newAssetHandler(storage services.AssetStorage) assetHandler {
	logger := log.With().Str("handlerName", "assetHandler").Logger()

	return assetHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

// upload stores an image and returns its public URL
// @Summary Upload image
// @Tags Assets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param folder formData string false "Folder" default(avatars)
// @Success 201 {object} AssetResponse
// @Failure 400 {object} ErrorResponse "Not an image"
// @Router /api/admin/assets [post]
func (h assetHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.storage == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "asset storage is not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		sniff := make([]byte, 512)
		n, err := io.ReadFull(file, sniff)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("file", err))
			return
		}
		contentType := http.DetectContentType(sniff[:n])
		if declared := header.Header.Get("Content-Type"); strings.HasPrefix(declared, "image/") {
			contentType = declared
		}
		if !strings.HasPrefix(contentType, "image/") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("file", "only images can be uploaded"))
			return
		}

		body := io.MultiReader(bytes.NewReader(sniff[:n]), file)
		url, err := h.storage.Upload(r.Context(), r.FormValue("folder"), header.Filename, contentType, body)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to upload image")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to upload image", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, AssetResponse{URL: url})
	}
}

// delete removes an uploaded image. It always answers 204: deletion is
// best-effort and failures are only logged.
// @Summary Delete image
// @Tags Assets
// @Param url query string true "Public URL of the image"
// @Success 204
// @Router /api/admin/assets [delete]
func (h assetHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}
		if h.storage != nil {
			h.storage.Delete(r.Context(), url)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
