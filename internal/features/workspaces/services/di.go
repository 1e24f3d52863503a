package workspaces_services

import (
	"planboard-backend/internal/features/audit_logs"
	workspaces_repositories "planboard-backend/internal/features/workspaces/repositories"
)

var workspaceService = &WorkspaceService{
	workspaces_repositories.GetWorkspaceRepository(),
	audit_logs.GetAuditLogService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}
