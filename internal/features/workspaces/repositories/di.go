package workspaces_repositories

var workspaceRepository = &WorkspaceRepository{}

func GetWorkspaceRepository() *WorkspaceRepository {
	return workspaceRepository
}
