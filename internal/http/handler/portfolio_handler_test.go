package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, env *testEnv, payload map[string]interface{}) domain.PortfolioProjectDTO {
	rec := env.do(t, http.MethodPost, "/api/portfolio", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[domain.PortfolioProjectDTO](t, rec)
}

func TestCreateProject_VisibleByDefault(t *testing.T) {
	env := newTestEnv(t)

	dto := createProject(t, env, map[string]interface{}{
		"title":       "Agency site relaunch",
		"description": "Full redesign",
		"imageUrl":    "https://cdn.example.com/relaunch.png",
		"category":    "Web Design",
	})

	assert.True(t, dto.IsVisible)
	assert.Equal(t, 0, dto.DisplayOrder)
	assert.NotEmpty(t, dto.CreatedAt)
}

func TestCreateProject_RequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/portfolio", map[string]interface{}{
		"description": "No title",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[domain.ErrorResponse](t, rec)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "title", body.Errors[0].Field)
}

func TestPublicPortfolio_HidesInvisible(t *testing.T) {
	env := newTestEnv(t)

	createProject(t, env, map[string]interface{}{"title": "Visible work"})
	hidden := createProject(t, env, map[string]interface{}{"title": "Hidden work", "isVisible": false})

	all := decodeBody[[]domain.PortfolioProjectDTO](t, env.do(t, http.MethodGet, "/api/portfolio", nil))
	assert.Len(t, all, 2)

	public := decodeBody[[]domain.PortfolioProjectDTO](t, env.do(t, http.MethodGet, "/api/portfolio/public", nil))
	require.Len(t, public, 1)
	assert.Equal(t, "Visible work", public[0].Title)
	assert.NotEqual(t, hidden.ID, public[0].ID)
}

func TestUpdateProject_ToggleVisibility(t *testing.T) {
	env := newTestEnv(t)

	created := createProject(t, env, map[string]interface{}{"title": "Case study"})

	rec := env.do(t, http.MethodPatch, "/api/portfolio/"+created.ID.String(), map[string]interface{}{
		"isVisible":    false,
		"displayOrder": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody[domain.PortfolioProjectDTO](t, rec)
	assert.False(t, updated.IsVisible)
	assert.Equal(t, 5, updated.DisplayOrder)
	assert.Equal(t, "Case study", updated.Title)
}

func TestDeleteProject(t *testing.T) {
	env := newTestEnv(t)

	created := createProject(t, env, map[string]interface{}{"title": "Old work"})

	rec := env.do(t, http.MethodDelete, "/api/portfolio/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/portfolio/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProject_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/portfolio/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
