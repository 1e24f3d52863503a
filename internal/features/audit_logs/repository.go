package audit_logs

import (
	"time"

	"planboard-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(auditLog *AuditLog) error {
	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLog, int64, error) {
	var logs []*AuditLog
	var total int64

	countQuery := storage.GetDb().Model(&AuditLog{}).Where("workspace_id = ?", workspaceID)
	if beforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", *beforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Limit(limit).
		Offset(offset).
		Order("created_at DESC")

	if beforeDate != nil {
		dataQuery = dataQuery.Where("created_at < ?", *beforeDate)
	}

	if err := dataQuery.Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *AuditLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := storage.GetDb().Where("created_at < ?", cutoff).Delete(&AuditLog{})
	return result.RowsAffected, result.Error
}
