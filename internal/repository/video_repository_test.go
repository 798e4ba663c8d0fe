package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVideo(id, title string, publishedAt time.Time) *domain.Video {
	return &domain.Video{
		ID:          id,
		Title:       title,
		PublishedAt: publishedAt,
		IsVisible:   true,
	}
}

func TestVideoRepository_Upsert_PreservesVisibility(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewVideoRepository(db)

	now := time.Now().UTC()
	video := testVideo("dQw4w9WgXcQ", "Launch reel", now)
	require.NoError(t, repo.Upsert(context.Background(), video))

	// Operator hides the video
	stored, err := repo.GetByID(context.Background(), video.ID)
	require.NoError(t, err)
	stored.IsVisible = false
	require.NoError(t, repo.Update(context.Background(), stored))

	// Re-import with a refreshed title
	refreshed := testVideo("dQw4w9WgXcQ", "Launch reel (2025)", now)
	require.NoError(t, repo.Upsert(context.Background(), refreshed))

	found, err := repo.GetByID(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch reel (2025)", found.Title)
	assert.False(t, found.IsVisible, "re-import must not resurface a hidden video")
}

func TestVideoRepository_List_NewestPublishedFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewVideoRepository(db)

	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(context.Background(), testVideo("aaa11111111", "Old", now.Add(-72*time.Hour))))
	require.NoError(t, repo.Upsert(context.Background(), testVideo("bbb22222222", "New", now)))

	videos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "New", videos[0].Title)
	assert.Equal(t, "Old", videos[1].Title)
}

func TestVideoRepository_ListVisible(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewVideoRepository(db)

	now := time.Now().UTC()
	visible := testVideo("ccc33333333", "Public", now)
	hidden := testVideo("ddd44444444", "Private", now)
	hidden.IsVisible = false
	require.NoError(t, repo.Upsert(context.Background(), visible))
	require.NoError(t, repo.Upsert(context.Background(), hidden))

	public, err := repo.ListVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Public", public[0].Title)
}
