package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiprotichd/bizdesk-api/internal/domain/entity"
	"github.com/kiprotichd/bizdesk-api/internal/domain/enum"
	domainRepo "github.com/kiprotichd/bizdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDashboardCounts(ctx context.Context, userID uuid.UUID) (*domainRepo.DashboardCounts, error) {
	counts := &domainRepo.DashboardCounts{}

	scoped := func(model interface{}) *gorm.DB {
		query := r.db.WithContext(ctx).Model(model)
		if userID != uuid.Nil {
			query = query.Where("user_id = ?", userID)
		}
		return query
	}

	if err := scoped(&entity.Client{}).Count(&counts.Clients).Error; err != nil {
		return nil, err
	}

	if err := scoped(&entity.Project{}).Count(&counts.Projects).Error; err != nil {
		return nil, err
	}

	if err := scoped(&entity.Quotation{}).
		Where("status IN ?", []enum.QuotationStatus{enum.QuotationStatusDraft, enum.QuotationStatusSent}).
		Count(&counts.OpenQuotations).Error; err != nil {
		return nil, err
	}

	if err := scoped(&entity.Invoice{}).
		Where("status IN ?", []enum.InvoiceStatus{
			enum.InvoiceStatusSent, enum.InvoiceStatusPartiallyPaid, enum.InvoiceStatusOverdue,
		}).
		Count(&counts.UnpaidInvoices).Error; err != nil {
		return nil, err
	}

	// Contact messages come from the public site and are not scoped to a user
	if err := r.db.WithContext(ctx).Model(&entity.ContactMessage{}).
		Where("status = ?", enum.MessageStatusNew).
		Count(&counts.NewMessages).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *analyticsRepository) GetRevenueTotals(ctx context.Context, userID uuid.UUID) (*domainRepo.RevenueTotals, error) {
	totals := &domainRepo.RevenueTotals{}

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("status <> ?", enum.InvoiceStatusCanceled)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	row := query.Select(
		"COALESCE(SUM(total_amount), 0) as total_invoiced, " +
			"COALESCE(SUM(amount_paid), 0) as total_collected, " +
			"COALESCE(SUM(total_amount - amount_paid), 0) as outstanding").
		Row()

	if err := row.Scan(&totals.TotalInvoiced, &totals.TotalCollected, &totals.Outstanding); err != nil {
		return nil, err
	}

	return totals, nil
}
