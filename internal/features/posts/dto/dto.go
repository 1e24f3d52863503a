package posts_dto

import (
	"time"

	posts_enums "planboard-backend/internal/features/posts/enums"
	posts_models "planboard-backend/internal/features/posts/models"

	"github.com/google/uuid"
)

type PlatformEntryDTO struct {
	Name posts_enums.PlatformName `json:"name" binding:"required"`
	URL  string                   `json:"url"`
}

type UpsertPostRequestDTO struct {
	WorkspaceID uuid.UUID          `json:"workspaceId" binding:"required"`
	Date        time.Time          `json:"date"        binding:"required"`
	Description string             `json:"description"`
	Platforms   []PlatformEntryDTO `json:"platforms"`
}

type ListPostsRequestDTO struct {
	WorkspaceID uuid.UUID `form:"workspaceId" binding:"required"`
	Month       int       `form:"month"       binding:"required"`
	Year        int       `form:"year"        binding:"required"`
}

// MonthStatsDTO is the month-overview projection shown above the calendar.
type MonthStatsDTO struct {
	TotalPosts      int `json:"totalPosts"`
	Videos          int `json:"videos"`
	InstagramPosts  int `json:"instagramPosts"`
	TiktokPosts     int `json:"tiktokPosts"`
	PlatformsActive int `json:"platformsActive"`
	DaysPlanned     int `json:"daysPlanned"`
}

type ListPostsResponseDTO struct {
	Posts []*posts_models.Post `json:"posts"`
	Stats *MonthStatsDTO       `json:"stats"`
}
