package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nerdtalks/backend/internal/apperr"
	"github.com/nerdtalks/backend/internal/models"
)

type reportRepo struct {
	db *gorm.DB
}

type ReportPage struct {
	Reports []models.Report
	PageInfo
}

// File creates a report in the pending state. The reported content is
// stored by value so the audit trail survives comment deletion.
func (r *reportRepo) File(ctx context.Context, report *models.Report) error {
	report.Status = models.ReportStatusPending
	if report.Type == "" {
		report.Type = models.ReportTypeComment
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return apperr.FromStore(err, "report not found")
	}
	return nil
}

// List pages through reports newest first. status "all" or empty means
// no filter; totals are scoped to the filter.
func (r *reportRepo) List(ctx context.Context, page PageRequest, status string) (*ReportPage, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if status != "" && status != "all" {
			return db.Where("status = ?", status)
		}
		return db
	}
	if status != "" && status != "all" && !models.ValidReportStatus(status) {
		return nil, apperr.New(apperr.InvalidArgument, "status must be pending, resolved, dismissed, or all")
	}

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Report{}).
		Scopes(filtered).
		Count(&total).Error
	if err != nil {
		return nil, apperr.FromStore(err, "report not found")
	}

	reports := []models.Report{}
	err = r.db.WithContext(ctx).
		Scopes(filtered).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&reports).Error
	if err != nil {
		return nil, apperr.FromStore(err, "report not found")
	}

	return &ReportPage{Reports: reports, PageInfo: NewPageInfo(total, page)}, nil
}

// SetStatus transitions a report and stamps updated_at. Values outside
// the enumerated set are rejected before any store call.
func (r *reportRepo) SetStatus(ctx context.Context, id, status string) error {
	if !models.ValidReportStatus(status) {
		return apperr.New(apperr.InvalidArgument, "status must be pending, resolved, or dismissed")
	}

	res := r.db.WithContext(ctx).Model(&models.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return apperr.FromStore(res.Error, "report not found")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "report not found")
	}
	return nil
}

func (r *reportRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Report{})
	if res.Error != nil {
		return apperr.FromStore(res.Error, "report not found")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "report not found")
	}
	return nil
}
