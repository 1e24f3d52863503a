package audit_logs

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const retentionPeriod = 90 * 24 * time.Hour

// AuditLogBackgroundService prunes audit logs past the retention period
// with a nightly sweep.
type AuditLogBackgroundService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

func (s *AuditLogBackgroundService) Run() {
	scheduler := cron.New()

	_, err := scheduler.AddFunc("0 3 * * *", s.sweep)
	if err != nil {
		s.logger.Error("Failed to schedule audit log retention sweep", "error", err)
		return
	}

	scheduler.Run()
}

func (s *AuditLogBackgroundService) sweep() {
	cutoff := time.Now().UTC().Add(-retentionPeriod)

	removed, err := s.auditLogRepository.DeleteOlderThan(cutoff)
	if err != nil {
		s.logger.Error("Audit log retention sweep failed", "error", err)
		return
	}

	if removed > 0 {
		s.logger.Info("Audit log retention sweep completed", "removed", removed)
	}
}
