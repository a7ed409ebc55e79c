package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMovieHandlerNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movie/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Movie not found", resp.Error)
}

func TestMovieHandlerFound(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.catalog.Create("202", "Inception", "A heist in dreams", "2010"))
	require.NoError(t, app.catalog.AttachVideo("202", "BAACAgI-file-id"))

	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movie/202", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp movieResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, movieResponse{
		ID:          "202",
		Title:       "Inception",
		Description: "A heist in dreams",
		Year:        "2010",
		FileID:      "BAACAgI-file-id",
	}, resp)
}

func TestAdminFormAccessDenied(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/admin", "/admin?admin_id=7"} {
		rec := httptest.NewRecorder()
		app.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusForbidden, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "Access denied")
	}
}

func TestAdminForm(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin?admin_id=42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/movie"`)
}

func TestAdminCreateMovie(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(t, app.routes(), "/admin/movie", url.Values{
		"admin_id":    {"42"},
		"id":          {"202"},
		"title":       {"Inception"},
		"description": {"A heist in dreams"},
		"year":        {"2010"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Inception", resp.Movie.Title)
	assert.Empty(t, resp.Movie.FileID)

	_, ok := app.catalog.Get("202")
	assert.True(t, ok)
}

func TestAdminCreateMovieForbidden(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(t, app.routes(), "/admin/movie", url.Values{
		"admin_id": {"7"},
		"id":       {"202"},
		"title":    {"Inception"},
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, app.catalog.Count())
}

func TestAdminCreateMovieMissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(t, app.routes(), "/admin/movie", url.Values{
		"admin_id": {"42"},
		"id":       {"202"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "id and title required", resp.Error)
}

func TestAdminCreateMovieDuplicate(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.catalog.Create("202", "Inception", "", ""))

	rec := postForm(t, app.routes(), "/admin/movie", url.Values{
		"admin_id": {"42"},
		"id":       {"202"},
		"title":    {"Tenet"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "allaqachon mavjud")
	assert.Equal(t, 1, app.catalog.Count())
}
