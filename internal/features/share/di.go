package share

import (
	"planboard-backend/internal/features/audit_logs"
	posts_services "planboard-backend/internal/features/posts/services"
	workspaces_repositories "planboard-backend/internal/features/workspaces/repositories"
)

var shareTokenService = &ShareTokenService{
	workspaces_repositories.GetWorkspaceRepository(),
	posts_services.GetPostService(),
	audit_logs.GetAuditLogService(),
	&randomSuffixGenerator{},
}

var shareController = &ShareController{
	shareTokenService,
}

func GetShareTokenService() *ShareTokenService {
	return shareTokenService
}

func GetShareController() *ShareController {
	return shareController
}
