package models

import (
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
)

// Language identifies one content partition.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// Languages lists every partition in save order.
var Languages = []Language{English, French}

// ParseLanguage accepts "en" or "fr" in any case.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case French:
		return French, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownLanguage, s)
	}
}

// Valid reports whether l is one of Languages.
func (l Language) Valid() bool {
	return l == English || l == French
}

// Other returns the opposite partition.
func (l Language) Other() Language {
	if l == English {
		return French
	}
	return English
}

func (l Language) String() string {
	return string(l)
}

// CacheKey is the fixed snapshot key for this language.
func (l Language) CacheKey() string {
	return "portfolio_data_" + string(l)
}
