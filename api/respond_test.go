package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriteJSONStatus(t *testing.T) {
	r := NewResponder(zerolog.Nop())

	rec := httptest.NewRecorder()
	r.WriteJSONStatus(rec, http.StatusCreated, map[string]string{"url": "x"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"x"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.WriteJSON(rec, map[string]string{"ok": "yes"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteJSONStatus_Oversized(t *testing.T) {
	old := maxResponseSize
	maxResponseSize = 64
	t.Cleanup(func() { maxResponseSize = old })

	rec := httptest.NewRecorder()
	NewResponder(zerolog.Nop()).WriteJSONStatus(rec, http.StatusCreated, strings.Repeat("a", 128))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "Response too large")
}

func TestWriteJSONStatus_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder(zerolog.Nop()).WriteJSONStatus(rec, http.StatusCreated, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
