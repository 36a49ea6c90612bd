package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
		expectedError  string
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "Empty username",
			requestBody:    map[string]string{"username": "", "password": "secret"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Username or password empty",
		},
		{
			name:           "Empty password",
			requestBody:    map[string]string{"username": "kroshka", "password": ""},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Username or password empty",
		},
		{
			name:           "Invalid username characters",
			requestBody:    map[string]string{"username": "kro shka", "password": "secret"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
		{
			name:           "First login registers the user",
			requestBody:    map[string]string{"username": "Kroshka", "password": "secret"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["created"])
				assert.Equal(t, "kroshka", body["username"])
				assert.Equal(t, "Welcome! An account for kroshka was created!", body["message"])
			},
		},
		{
			name:           "Second login signs in",
			requestBody:    map[string]string{"username": "kroshka", "password": "secret"},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["created"])
				assert.Equal(t, "Welcome back, kroshka!", body["message"])
			},
		},
		{
			name:           "Wrong password for an existing user",
			requestBody:    map[string]string{"username": "KROSHKA", "password": "nope"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "The password was wrong for the existing user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/auth/login", tt.requestBody, nil)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedError != "" {
				assert.Contains(t, body["error"], tt.expectedError)
			}
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestMeAndLogout(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	resp, _ := doJSON(t, fiberApp, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cookie := login(t, fiberApp, "kroshka", "secret")

	resp, body := doJSON(t, fiberApp, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "kroshka", user["username"])
	assert.NotZero(t, user["id"])

	resp, body = doJSON(t, fiberApp, http.MethodGet, "/", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["authenticated"])

	resp, body = doJSON(t, fiberApp, http.MethodPost, "/api/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "You've been logged out.", body["message"])

	resp, _ = doJSON(t, fiberApp, http.MethodGet, "/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, fiberApp, http.MethodGet, "/", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["authenticated"])
}

func TestSessionOfDeletedUser(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	cookie := login(t, fiberApp, "ghost", "boo")

	id, err := application.Repo.GetIDByUser(context.Background(), "ghost")
	require.NoError(t, err)
	_, err = application.Repo.DeleteUserByID(context.Background(), id)
	require.NoError(t, err)

	resp, _ := doJSON(t, fiberApp, http.MethodGet, "/api/notes", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, application.SessionStore.Len())
}

func TestHealth(t *testing.T) {
	application, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	resp, body := doJSON(t, fiberApp, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, _ = doJSON(t, fiberApp, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
