package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a client-scoped container for a content calendar.
type Workspace struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id"`
	Name       string    `json:"name"       gorm:"column:name"`
	ClientName string    `json:"clientName" gorm:"column:client_name"`
	ShareToken *string   `json:"shareToken" gorm:"column:share_token"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updatedAt"  gorm:"column:updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
