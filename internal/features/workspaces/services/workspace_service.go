package workspaces_services

import (
	"errors"
	"fmt"
	"time"

	"planboard-backend/internal/features/audit_logs"
	users_models "planboard-backend/internal/features/users/models"
	workspaces_dto "planboard-backend/internal/features/workspaces/dto"
	workspaces_models "planboard-backend/internal/features/workspaces/models"
	workspaces_repositories "planboard-backend/internal/features/workspaces/repositories"
	"planboard-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	auditLogService     *audit_logs.AuditLogService
}

func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	now := time.Now().UTC()

	workspace := &workspaces_models.Workspace{
		ID:         uuid.New(),
		Name:       request.Name,
		ClientName: request.ClientName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		&user.ID,
		&workspace.ID,
	)

	return &workspaces_dto.WorkspaceResponseDTO{
		ID:         workspace.ID,
		Name:       workspace.Name,
		ClientName: workspace.ClientName,
		ShareToken: workspace.ShareToken,
		CreatedAt:  workspace.CreatedAt,
		UpdatedAt:  workspace.UpdatedAt,
		PostCount:  0,
	}, nil
}

func (s *WorkspaceService) GetWorkspace(
	workspaceID uuid.UUID,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	postCount, err := s.workspaceRepository.CountPosts(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	return &workspaces_dto.WorkspaceResponseDTO{
		ID:         workspace.ID,
		Name:       workspace.Name,
		ClientName: workspace.ClientName,
		ShareToken: workspace.ShareToken,
		CreatedAt:  workspace.CreatedAt,
		UpdatedAt:  workspace.UpdatedAt,
		PostCount:  postCount,
	}, nil
}

func (s *WorkspaceService) GetWorkspaces() (*workspaces_dto.ListWorkspacesResponseDTO, error) {
	workspaces, err := s.workspaceRepository.GetAllWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}

	return &workspaces_dto.ListWorkspacesResponseDTO{
		Workspaces: workspaces,
	}, nil
}

// UpdateWorkspace applies a partial update: only fields present in the
// request change.
func (s *WorkspaceService) UpdateWorkspace(
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if request.Name != nil {
		workspace.Name = *request.Name
	}
	if request.ClientName != nil {
		workspace.ClientName = *request.ClientName
	}

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace updated: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return s.GetWorkspace(workspaceID)
}

func (s *WorkspaceService) DeleteWorkspace(workspaceID uuid.UUID, user *users_models.User) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace deleted: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

func (s *WorkspaceService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	if _, err := s.workspaceRepository.GetWorkspaceByID(workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return s.auditLogService.GetWorkspaceAuditLogs(workspaceID, request)
}
