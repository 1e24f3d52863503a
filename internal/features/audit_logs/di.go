package audit_logs

import (
	users_services "planboard-backend/internal/features/users/services"
	"planboard-backend/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}

var auditLogService = &AuditLogService{
	auditLogRepository,
	logger.GetLogger(),
}

var auditLogBackgroundService = &AuditLogBackgroundService{
	auditLogRepository,
	logger.GetLogger(),
}

func GetAuditLogRepository() *AuditLogRepository {
	return auditLogRepository
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogBackgroundService() *AuditLogBackgroundService {
	return auditLogBackgroundService
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
