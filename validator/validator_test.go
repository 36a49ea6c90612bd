package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meow-notes/models"
)

func TestValidator_Login(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.LoginRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid login",
			req:       models.LoginRequest{Username: "kroshka", Password: "secret"},
			wantError: false,
		},
		{
			name:      "Unicode username",
			req:       models.LoginRequest{Username: "Мурка_2", Password: "secret"},
			wantError: false,
		},
		{
			name:      "Missing username",
			req:       models.LoginRequest{Username: "", Password: "secret"},
			wantError: true,
			errorMsg:  "username is required",
		},
		{
			name:      "Missing password",
			req:       models.LoginRequest{Username: "kroshka", Password: ""},
			wantError: true,
			errorMsg:  "password is required",
		},
		{
			name:      "Username with spaces",
			req:       models.LoginRequest{Username: "kro shka", Password: "secret"},
			wantError: true,
			errorMsg:  "username contains invalid characters",
		},
		{
			name:      "Username with a quote",
			req:       models.LoginRequest{Username: "x' OR '1'='1", Password: "secret"},
			wantError: true,
			errorMsg:  "username contains invalid characters",
		},
		{
			name:      "Username too long",
			req:       models.LoginRequest{Username: strings.Repeat("a", 65), Password: "secret"},
			wantError: true,
			errorMsg:  "username must be at most 64 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Note(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note",
			req:       models.CreateNoteRequest{Title: "Note 1", Tags: "uni, se", Content: "hello"},
			wantError: false,
		},
		{
			name:      "Empty everything is allowed",
			req:       models.CreateNoteRequest{},
			wantError: false,
		},
		{
			name:      "Blank tag entries are tolerated",
			req:       models.CreateNoteRequest{Title: "t", Tags: "uni,,se,"},
			wantError: false,
		},
		{
			name:      "Punctuation inside tags",
			req:       models.CreateNoteRequest{Title: "t", Tags: "c++, q&a, don't, 2019/05, uni;se"},
			wantError: false,
		},
		{
			name:      "Tags total too long",
			req:       models.CreateNoteRequest{Title: "t", Tags: strings.Repeat("abcdefghi,", 51)},
			wantError: true,
			errorMsg:  "tags must be at most 500 characters",
		},
		{
			name:      "Single tag too long",
			req:       models.CreateNoteRequest{Title: "t", Tags: strings.Repeat("x", 51)},
			wantError: true,
			errorMsg:  "tags must be a comma-separated list",
		},
		{
			name:      "Title too long",
			req:       models.CreateNoteRequest{Title: strings.Repeat("x", 201)},
			wantError: true,
			errorMsg:  "title must be at most 200 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Search(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(models.SearchRequest{Term: "cat"}))

	err := v.Validate(models.SearchRequest{Term: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term is required")

	assert.NoError(t, v.Validate(models.FilterRequest{Fields: []string{"title", "tags"}}))
	assert.NoError(t, v.Validate(models.FilterRequest{Fields: []string{}}))

	err = v.Validate(models.FilterRequest{Fields: []string{"title", "password"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: title, tags, content")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required", Tag: "required"},
		{Field: "password", Message: "password is required", Tag: "required"},
	}
	assert.Equal(t, "username is required; password is required", errs.Error())
}
