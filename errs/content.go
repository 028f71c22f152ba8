package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Content synchronization errors. Each one maps to a banner kind shown by
// the admin surface.
var (
	ErrConfigMissing   = errors.New("backend configuration missing")
	ErrFetchFailed     = errors.New("failed to fetch content, using cached/default data")
	ErrSaveFailed      = errors.New("failed to save content")
	ErrUnknownLanguage = errors.New("unknown language")
)

// NewFetchError wraps a remote read failure.
func NewFetchError(cause error) error {
	return fmt.Errorf("%w: %w", ErrFetchFailed, cause)
}

// NewSaveError wraps a remote write failure of one language.
func NewSaveError(lang, collection string, cause error) error {
	return fmt.Errorf("%w (%s %s): %w", ErrSaveFailed, lang, collection, cause)
}

// NewConfigMissingError names the missing settings.
func NewConfigMissingError(keys ...string) error {
	return fmt.Errorf("%w: %v", ErrConfigMissing, keys)
}

func NewUnknownLanguageError(lang string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        errors.New("No data found"),
		Message:    fmt.Sprintf("No content exists for language %q", lang),
		Cause:      ErrUnknownLanguage,
		Field:      "lang",
	}
}

func IsConfigMissing(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}

func IsSaveFailed(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}
