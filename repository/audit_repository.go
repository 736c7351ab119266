package repository

import (
	"context"

	"cafestaff/entity"

	"gorm.io/gorm"
)

// AuditRepository stores audit entries in the audit_log table.
type AuditRepository struct {
	DB *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) Record(ctx context.Context, e *entity.AuditEntry) error {
	return r.DB.WithContext(ctx).Create(e).Error
}
