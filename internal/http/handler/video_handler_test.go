package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVideo(t *testing.T, env *testEnv, id, title string, visible bool) {
	repo := repository.NewVideoRepository(env.db)
	require.NoError(t, repo.Upsert(context.Background(), &domain.Video{
		ID:          id,
		Title:       title,
		PublishedAt: time.Now().UTC(),
		IsVisible:   visible,
	}))
}

func TestListVideos_AdminSeesHidden(t *testing.T) {
	env := newTestEnv(t)
	seedVideo(t, env, "vid000000001", "Public reel", true)
	seedVideo(t, env, "vid000000002", "Hidden reel", false)

	all := decodeBody[[]domain.VideoDTO](t, env.do(t, http.MethodGet, "/api/youtube-videos", nil))
	assert.Len(t, all, 2)

	public := decodeBody[[]domain.VideoDTO](t, env.do(t, http.MethodGet, "/api/youtube-videos/public", nil))
	require.Len(t, public, 1)
	assert.Equal(t, "Public reel", public[0].Title)
}

func TestUpdateVideo_ToggleVisibility(t *testing.T) {
	env := newTestEnv(t)
	seedVideo(t, env, "vid000000003", "Showcase", true)

	rec := env.do(t, http.MethodPatch, "/api/youtube-videos/vid000000003", map[string]interface{}{
		"isVisible": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	dto := decodeBody[domain.VideoDTO](t, rec)
	assert.False(t, dto.IsVisible)

	public := decodeBody[[]domain.VideoDTO](t, env.do(t, http.MethodGet, "/api/youtube-videos/public", nil))
	assert.Empty(t, public)
}

func TestUpdateVideo_RequiresIsVisible(t *testing.T) {
	env := newTestEnv(t)
	seedVideo(t, env, "vid000000004", "Showcase", true)

	rec := env.do(t, http.MethodPatch, "/api/youtube-videos/vid000000004", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportVideos_UpsertsBatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/youtube-videos/import", map[string]interface{}{
		"videos": []map[string]interface{}{
			{
				"id":          "vid000000010",
				"title":       "Launch film",
				"publishedAt": "2026-08-01T10:00:00Z",
			},
			{
				"id":           "vid000000011",
				"title":        "Behind the scenes",
				"thumbnailUrl": "https://img.example.com/bts.jpg",
				"publishedAt":  "2026-08-15T10:00:00Z",
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	all := decodeBody[[]domain.VideoDTO](t, rec)
	require.Len(t, all, 2)
	assert.Equal(t, "Behind the scenes", all[0].Title, "newest published first")
	assert.True(t, all[0].IsVisible, "imports are visible by default")
}

func TestImportVideos_PreservesHiddenOnReimport(t *testing.T) {
	env := newTestEnv(t)
	seedVideo(t, env, "vid000000012", "Old title", false)

	rec := env.do(t, http.MethodPost, "/api/youtube-videos/import", map[string]interface{}{
		"videos": []map[string]interface{}{
			{
				"id":          "vid000000012",
				"title":       "New title",
				"publishedAt": "2026-08-01T10:00:00Z",
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	all := decodeBody[[]domain.VideoDTO](t, rec)
	require.Len(t, all, 1)
	assert.Equal(t, "New title", all[0].Title)
	assert.False(t, all[0].IsVisible, "operator-set visibility survives re-import")
}

func TestImportVideos_RejectsBadTimestamp(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/youtube-videos/import", map[string]interface{}{
		"videos": []map[string]interface{}{
			{
				"id":          "vid000000013",
				"title":       "Bad date",
				"publishedAt": "yesterday",
			},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateVideo_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPatch, "/api/youtube-videos/missing00001", map[string]interface{}{
		"isVisible": true,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
