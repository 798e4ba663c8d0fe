package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test. The named
// shared-cache DSN keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Lead{},
		&domain.PortfolioProject{},
		&domain.Video{},
	))

	return db
}

func testLead(name string, status domain.LeadStatus) *domain.Lead {
	return &domain.Lead{
		Name:        name,
		Email:       "lead@example.com",
		ProjectType: domain.ProjectTypeEcommerce,
		BudgetRange: domain.Budget1KTo5K,
		Timeline:    domain.TimelineOneMonth,
		Features:    []string{"Responsive Design", "SEO Optimization"},
		Status:      status,
	}
}
