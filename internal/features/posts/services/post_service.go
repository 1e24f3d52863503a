package posts_services

import (
	"errors"
	"fmt"
	"time"

	"planboard-backend/internal/features/audit_logs"
	posts_dto "planboard-backend/internal/features/posts/dto"
	posts_enums "planboard-backend/internal/features/posts/enums"
	posts_models "planboard-backend/internal/features/posts/models"
	posts_repositories "planboard-backend/internal/features/posts/repositories"
	users_models "planboard-backend/internal/features/users/models"
	workspaces_repositories "planboard-backend/internal/features/workspaces/repositories"
	"planboard-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostService struct {
	postRepository      *posts_repositories.PostRepository
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	auditLogService     *audit_logs.AuditLogService
}

// UpsertPost saves the post for (workspace, day): created if absent,
// replaced in place otherwise. The platform set always ends up exactly as
// passed in; nothing from a previous save survives unless re-listed.
func (s *PostService) UpsertPost(
	request *posts_dto.UpsertPostRequestDTO,
	user *users_models.User,
) (*posts_models.Post, error) {
	for _, platform := range request.Platforms {
		if !platform.Name.IsValid() {
			return nil, fmt.Errorf(
				"%w: unknown platform name %q",
				apperrors.ErrInvalidInput,
				platform.Name,
			)
		}
	}

	if _, err := s.workspaceRepository.GetWorkspaceByID(request.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	date := posts_models.NormalizeDate(request.Date)

	platforms := make([]posts_models.Platform, 0, len(request.Platforms))
	for _, platform := range request.Platforms {
		platforms = append(platforms, posts_models.Platform{
			Name: platform.Name,
			URL:  platform.URL,
		})
	}

	post, err := s.postRepository.UpsertByWorkspaceAndDate(
		request.WorkspaceID,
		date,
		request.Description,
		platforms,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Post saved for %s", date.Format("2006-01-02")),
		&user.ID,
		&request.WorkspaceID,
	)

	return post, nil
}

// GetPost returns a single post with its platforms attached.
func (s *PostService) GetPost(postID uuid.UUID) (*posts_models.Post, error) {
	post, err := s.postRepository.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post does not exist", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// DeletePost removes a post and its platforms. Deleting an already-removed
// post is not an error.
func (s *PostService) DeletePost(postID uuid.UUID, user *users_models.User) error {
	post, err := s.postRepository.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return fmt.Errorf("failed to get post: %w", err)
	}

	if err := s.postRepository.DeletePost(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Post deleted for %s", post.Date.Format("2006-01-02")),
		&user.ID,
		&post.WorkspaceID,
	)

	return nil
}

// ListPosts returns the workspace's posts for a month together with the
// month-overview stats.
func (s *PostService) ListPosts(
	workspaceID uuid.UUID,
	month, year int,
) (*posts_dto.ListPostsResponseDTO, error) {
	if _, err := s.workspaceRepository.GetWorkspaceByID(workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	posts, err := s.GetMonthPosts(workspaceID, month, year)
	if err != nil {
		return nil, err
	}

	return &posts_dto.ListPostsResponseDTO{
		Posts: posts,
		Stats: CalculateMonthStats(posts),
	}, nil
}

// GetMonthPosts returns all posts whose date falls in the given month,
// ascending by date, platforms attached.
func (s *PostService) GetMonthPosts(
	workspaceID uuid.UUID,
	month, year int,
) ([]*posts_models.Post, error) {
	from, to, err := MonthRange(month, year)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepository.FindByWorkspaceAndDateRange(workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// MonthRange computes the half-open UTC range [first day of month, first
// day of next month) which, with day-normalized dates, covers the month
// inclusively.
func MonthRange(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: month must be between 1 and 12, got %d",
			apperrors.ErrInvalidInput,
			month,
		)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	return from, to, nil
}

// CalculateMonthStats mirrors the month overview shown above the calendar
// grid: a post counts as a video when it targets youtube or tiktok, and
// platformsActive is the number of distinct platform names in the month.
func CalculateMonthStats(posts []*posts_models.Post) *posts_dto.MonthStatsDTO {
	stats := &posts_dto.MonthStatsDTO{
		TotalPosts:  len(posts),
		DaysPlanned: len(posts),
	}

	activePlatforms := map[posts_enums.PlatformName]struct{}{}

	for _, post := range posts {
		hasVideo, hasInstagram, hasTiktok := false, false, false

		for _, platform := range post.Platforms {
			activePlatforms[platform.Name] = struct{}{}

			switch platform.Name {
			case posts_enums.PlatformYoutube:
				hasVideo = true
			case posts_enums.PlatformTiktok:
				hasVideo = true
				hasTiktok = true
			case posts_enums.PlatformInstagram:
				hasInstagram = true
			}
		}

		if hasVideo {
			stats.Videos++
		}
		if hasInstagram {
			stats.InstagramPosts++
		}
		if hasTiktok {
			stats.TiktokPosts++
		}
	}

	stats.PlatformsActive = len(activePlatforms)

	return stats
}
