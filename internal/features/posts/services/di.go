package posts_services

import (
	"planboard-backend/internal/features/audit_logs"
	posts_repositories "planboard-backend/internal/features/posts/repositories"
	workspaces_repositories "planboard-backend/internal/features/workspaces/repositories"
)

var postService = &PostService{
	posts_repositories.GetPostRepository(),
	workspaces_repositories.GetWorkspaceRepository(),
	audit_logs.GetAuditLogService(),
}

func GetPostService() *PostService {
	return postService
}
