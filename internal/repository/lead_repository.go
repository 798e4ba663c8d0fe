package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns all leads, newest first
func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

// Delete removes a lead by id and reports whether a row was removed
func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Lead{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Stats computes the dashboard counters by scanning all leads. The table is
// small (operator-curated), so a full scan beats four separate count queries.
func (r *LeadRepository) Stats(ctx context.Context, now time.Time) (*domain.LeadStats, error) {
	var leads []domain.Lead
	if err := r.db.WithContext(ctx).Find(&leads).Error; err != nil {
		return nil, err
	}

	oneWeekAgo := now.AddDate(0, 0, -7)

	stats := &domain.LeadStats{TotalLeads: int64(len(leads))}
	for _, lead := range leads {
		if !lead.CreatedAt.Before(oneWeekAgo) {
			stats.NewThisWeek++
		}
		switch lead.Status {
		case domain.LeadStatusInProgress:
			stats.InProgress++
		case domain.LeadStatusConverted:
			stats.Converted++
		}
	}

	return stats, nil
}
