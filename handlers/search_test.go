package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultTitles(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	result := body["result"].(map[string]interface{})
	raw, _ := result["notes"].([]interface{})
	titles := make([]string, len(raw))
	for i, n := range raw {
		titles[i] = n.(map[string]interface{})["title"].(string)
	}
	return titles
}

func TestSearch(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	cookie := login(t, fiberApp, "kroshka", "secret")
	createNote(t, fiberApp, cookie, "Note 1", "uni,se", "hello")
	createNote(t, fiberApp, cookie, "Cat food", "shopping", "tuna and more cat treats")
	createNote(t, fiberApp, cookie, "Lecture", "uni", "software engineering")

	t.Run("Filter before any search", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search/filter",
			map[string]interface{}{"fields": []string{"title"}}, cookie)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Search for something first", body["error"])
	})

	t.Run("Empty term", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search", map[string]string{"term": ""}, cookie)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["error"])
	})

	t.Run("Search every field", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search", map[string]string{"term": "UNI"}, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.ElementsMatch(t, []string{"Note 1", "Lecture"}, resultTitles(t, body))
		assert.Equal(t, float64(2), body["result"].(map[string]interface{})["count"])
	})

	t.Run("Filter reuses the lower-cased term", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search/filter",
			map[string]interface{}{"fields": []string{"title"}}, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "uni", body["result"].(map[string]interface{})["term"])
		assert.Empty(t, resultTitles(t, body))

		resp, body = doJSON(t, fiberApp, http.MethodPost, "/api/search/filter",
			map[string]interface{}{"fields": []string{"tags"}}, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.ElementsMatch(t, []string{"Note 1", "Lecture"}, resultTitles(t, body))
	})

	t.Run("Filter with no fields", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search/filter",
			map[string]interface{}{"fields": []string{}}, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resultTitles(t, body))
	})

	t.Run("Filter with an unknown field", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search/filter",
			map[string]interface{}{"fields": []string{"password"}}, cookie)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["error"])
	})

	t.Run("A note matching several fields is listed once", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search", map[string]string{"term": "cat"}, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"Cat food"}, resultTitles(t, body))
	})

	t.Run("Clearing the search makes filter ask for a new one", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodDelete, "/api/search", nil, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Search cleared.", body["message"])

		resp, body = doJSON(t, fiberApp, http.MethodPost, "/api/search/filter",
			map[string]interface{}{"fields": []string{"title"}}, cookie)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Search for something first", body["error"])
	})

	t.Run("Quotes are matched literally", func(t *testing.T) {
		resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/search", map[string]string{"term": "' OR '1'='1"}, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resultTitles(t, body))
	})
}
