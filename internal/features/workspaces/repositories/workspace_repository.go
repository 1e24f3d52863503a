package workspaces_repositories

import (
	"time"

	workspaces_dto "planboard-backend/internal/features/workspaces/dto"
	workspaces_models "planboard-backend/internal/features/workspaces/models"
	"planboard-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct{}

func (r *WorkspaceRepository) CreateWorkspace(workspace *workspaces_models.Workspace) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}
	if workspace.UpdatedAt.IsZero() {
		workspace.UpdatedAt = workspace.CreatedAt
	}

	return storage.GetDb().Create(workspace).Error
}

func (r *WorkspaceRepository) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	if err := storage.GetDb().Where("id = ?", workspaceID).First(&workspace).Error; err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) GetWorkspaceByShareToken(
	shareToken string,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().Where("share_token = ?", shareToken).First(&workspace).Error
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) UpdateWorkspace(workspace *workspaces_models.Workspace) error {
	workspace.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(workspace).Error
}

// DeleteWorkspace removes the workspace together with its posts and their
// platforms in one transaction.
func (r *WorkspaceRepository) DeleteWorkspace(workspaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"DELETE FROM platforms WHERE post_id IN (SELECT id FROM posts WHERE workspace_id = ?)",
			workspaceID,
		).Error
		if err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM posts WHERE workspace_id = ?", workspaceID).Error; err != nil {
			return err
		}

		return tx.Delete(&workspaces_models.Workspace{}, "id = ?", workspaceID).Error
	})
}

// GetAllWorkspaces returns every workspace annotated with its current post
// count, newest first.
func (r *WorkspaceRepository) GetAllWorkspaces() ([]*workspaces_dto.WorkspaceResponseDTO, error) {
	var workspaces []*workspaces_dto.WorkspaceResponseDTO

	err := storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Select("workspaces.*, (SELECT COUNT(*) FROM posts WHERE posts.workspace_id = workspaces.id) AS post_count").
		Order("created_at DESC").
		Find(&workspaces).Error

	return workspaces, err
}

func (r *WorkspaceRepository) CountPosts(workspaceID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Table("posts").
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error

	return count, err
}
