package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 20, 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, NewMeta(1, 20, 0).TotalPages)
	assert.Equal(t, 1, NewMeta(1, 20, 20).TotalPages)
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, 200, "ok", map[string]string{"k": "v"})

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}

func TestErrorHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	Conflict(w, "slot taken")
	assert.Equal(t, 409, w.Code)

	w = httptest.NewRecorder()
	Conflict(w, "")
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Conflict", resp.Message)

	w = httptest.NewRecorder()
	NotFound(w, "")
	assert.Equal(t, 404, w.Code)

	w = httptest.NewRecorder()
	Forbidden(w, "")
	assert.Equal(t, 403, w.Code)
}
