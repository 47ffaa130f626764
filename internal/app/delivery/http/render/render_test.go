package render

import (
	"konsulin-admin-console/internal/pkg/dto/responses"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Page(t *testing.T) {
	renderer, err := New()
	require.NoError(t, err)

	t.Run("Specializations", func(t *testing.T) {
		rec := httptest.NewRecorder()
		records := []responses.Specialization{
			{ID: 1, Key: "1", Name: "Cardiology", Description: "Heart <care>", IsActive: true},
			{ID: 2, Key: "spec-2", Name: "Dermatology", IsActive: false},
		}

		err := renderer.Page(rec, 200, PageSpecializations, &PageData{
			Title:   "Specializations",
			Notices: []responses.Notice{responses.NewErrorNotice("Error", "database offline")},
			Health:  &responses.HealthStatus{Reachable: true, StatusCode: 200},
			List:    responses.SpecializationListSnapshot{State: "ready", Records: records, Filtered: records},
		})

		require.NoError(t, err)
		body := rec.Body.String()
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, body, "notice notice-destructive")
		assert.Contains(t, body, "database offline")
		assert.Contains(t, body, "Heart &lt;care&gt;")
		assert.Contains(t, body, "/admin/specializations/spec-2/toggle-active")
		assert.Contains(t, body, "Deactivate")
		assert.Contains(t, body, "Activate")
		assert.Contains(t, body, "Backend: reachable")
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()

		err := renderer.Page(rec, 200, PageSpecializations, &PageData{
			Title: "Specializations",
			List:  responses.SpecializationListSnapshot{State: "unauthenticated"},
		})

		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Please log in to view specializations.")
	})

	t.Run("Confirm Delete", func(t *testing.T) {
		rec := httptest.NewRecorder()

		err := renderer.Page(rec, 200, PageConfirmDelete, &PageData{
			Title:          "Delete specialization",
			RawID:          "spec-7",
			ConfirmMessage: "Are you sure you want to delete this specialization?",
		})

		require.NoError(t, err)
		body := rec.Body.String()
		assert.Contains(t, body, "Are you sure you want to delete this specialization?")
		assert.Contains(t, body, `action="/admin/specializations/spec-7/delete"`)
		assert.Contains(t, body, `name="confirm" value="yes"`)
	})

	t.Run("Unknown Page", func(t *testing.T) {
		err := renderer.Page(httptest.NewRecorder(), 200, "missing", &PageData{})
		assert.Error(t, err)
	})
}
