package posts_models

import (
	"time"

	posts_enums "planboard-backend/internal/features/posts/enums"

	"github.com/google/uuid"
)

// Post is a single day's planned content entry within a workspace. At most
// one post exists per (workspace, date) pair; dates are stored as UTC
// midnight so the pair is stable regardless of client time-of-day.
type Post struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID  `json:"workspaceId" gorm:"column:workspace_id;uniqueIndex:idx_posts_workspace_date"`
	Date        time.Time  `json:"date"        gorm:"column:date;uniqueIndex:idx_posts_workspace_date"`
	Description string     `json:"description" gorm:"column:description"`
	Platforms   []Platform `json:"platforms"   gorm:"foreignKey:PostID"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// Platform is owned exclusively by its post: every save of the post drops
// and recreates the full platform set, so rows get fresh identifiers.
type Platform struct {
	ID     uuid.UUID                `json:"id"     gorm:"column:id"`
	PostID uuid.UUID                `json:"postId" gorm:"column:post_id"`
	Name   posts_enums.PlatformName `json:"name"   gorm:"column:name"`
	URL    string                   `json:"url"    gorm:"column:url"`
}

func (Platform) TableName() string {
	return "platforms"
}

// NormalizeDate truncates a date to calendar-day granularity in UTC.
func NormalizeDate(date time.Time) time.Time {
	utc := date.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
