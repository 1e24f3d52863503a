package share

import (
	posts_models "planboard-backend/internal/features/posts/models"
	workspaces_models "planboard-backend/internal/features/workspaces/models"
)

type IssueShareTokenResponseDTO struct {
	ShareToken string `json:"shareToken"`
}

// PublicCalendarResponseDTO is the anonymous read-only view of a
// workspace's calendar, resolved by share token.
type PublicCalendarResponseDTO struct {
	Workspace *workspaces_models.Workspace `json:"workspace"`
	Posts     []*posts_models.Post         `json:"posts"`
}
