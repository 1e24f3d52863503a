package workspaces_testing

import (
	"planboard-backend/internal/features/audit_logs"
	users_middleware "planboard-backend/internal/features/users/middleware"
	users_models "planboard-backend/internal/features/users/models"
	users_services "planboard-backend/internal/features/users/services"
	workspaces_dto "planboard-backend/internal/features/workspaces/dto"
	workspaces_services "planboard-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateTestRouter builds an in-memory gin engine with the auth middleware
// applied to every given controller's routes.
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	audit_logs.SetupDependencies()

	return router
}

func CreateTestWorkspace(
	name string,
	clientName string,
	owner *users_models.User,
) *workspaces_dto.WorkspaceResponseDTO {
	workspace, err := workspaces_services.GetWorkspaceService().CreateWorkspace(
		&workspaces_dto.CreateWorkspaceRequestDTO{
			Name:       name,
			ClientName: clientName,
		},
		owner,
	)
	if err != nil {
		panic(err)
	}

	return workspace
}
