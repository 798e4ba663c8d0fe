package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRepository_Create_Defaults(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	lead := testLead("Alice", "")
	err := repo.Create(context.Background(), lead)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestLeadRepository_List_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	now := time.Now().UTC()
	older := testLead("Older", domain.LeadStatusNew)
	older.CreatedAt = now.Add(-48 * time.Hour)
	newer := testLead("Newer", domain.LeadStatusNew)
	newer.CreatedAt = now

	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Newer", leads[0].Name)
	assert.Equal(t, "Older", leads[1].Name)
}

func TestLeadRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	lead := testLead("Alice", domain.LeadStatusNew)
	require.NoError(t, repo.Create(context.Background(), lead))

	lead.Status = domain.LeadStatusContacted
	lead.Company = "Acme"
	require.NoError(t, repo.Update(context.Background(), lead))

	found, err := repo.GetByID(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusContacted, found.Status)
	assert.Equal(t, "Acme", found.Company)
	assert.Equal(t, []string{"Responsive Design", "SEO Optimization"}, []string(found.Features))
}

func TestLeadRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	lead := testLead("Alice", domain.LeadStatusNew)
	require.NoError(t, repo.Create(context.Background(), lead))

	deleted, err := repo.Delete(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete of the same id reports nothing removed
	deleted, err = repo.Delete(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(context.Background(), lead.ID)
	assert.Error(t, err)
}

func TestLeadRepository_Delete_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	deleted, err := repo.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestLeadRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	now := time.Now().UTC()

	fixtures := []struct {
		name      string
		status    domain.LeadStatus
		createdAt time.Time
	}{
		{"recent new", domain.LeadStatusNew, now.Add(-24 * time.Hour)},
		{"recent in progress", domain.LeadStatusInProgress, now.Add(-2 * 24 * time.Hour)},
		{"old contacted", domain.LeadStatusContacted, now.Add(-10 * 24 * time.Hour)},
		{"old converted", domain.LeadStatusConverted, now.Add(-30 * 24 * time.Hour)},
		{"old archived", domain.LeadStatusArchived, now.Add(-60 * 24 * time.Hour)},
	}
	for _, f := range fixtures {
		lead := testLead(f.name, f.status)
		lead.CreatedAt = f.createdAt
		require.NoError(t, repo.Create(context.Background(), lead))
	}

	stats, err := repo.Stats(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalLeads)
	assert.Equal(t, int64(2), stats.NewThisWeek)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(1), stats.Converted)
}

func TestLeadRepository_Stats_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLeadRepository(db)

	stats, err := repo.Stats(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalLeads)
	assert.Equal(t, int64(0), stats.NewThisWeek)
	assert.Equal(t, int64(0), stats.InProgress)
	assert.Equal(t, int64(0), stats.Converted)
}
