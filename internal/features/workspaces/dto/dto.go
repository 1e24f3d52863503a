package workspaces_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceRequestDTO struct {
	Name       string `json:"name"       binding:"required,min=1,max=255"`
	ClientName string `json:"clientName" binding:"required,min=1,max=255"`
}

// UpdateWorkspaceRequestDTO is a partial update: only supplied fields change.
type UpdateWorkspaceRequestDTO struct {
	Name       *string `json:"name"       binding:"omitempty,min=1,max=255"`
	ClientName *string `json:"clientName" binding:"omitempty,min=1,max=255"`
}

type WorkspaceResponseDTO struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id"`
	Name       string    `json:"name"       gorm:"column:name"`
	ClientName string    `json:"clientName" gorm:"column:client_name"`
	ShareToken *string   `json:"shareToken" gorm:"column:share_token"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updatedAt"  gorm:"column:updated_at"`
	PostCount  int64     `json:"postCount"  gorm:"column:post_count"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []*WorkspaceResponseDTO `json:"workspaces"`
}
