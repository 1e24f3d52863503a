package share

import (
	"errors"
	"fmt"
	"time"

	"planboard-backend/internal/features/audit_logs"
	posts_services "planboard-backend/internal/features/posts/services"
	users_models "planboard-backend/internal/features/users/models"
	workspaces_repositories "planboard-backend/internal/features/workspaces/repositories"
	"planboard-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxTokenAttempts = 5

// ShareTokenService issues and revokes the opaque tokens that grant
// anonymous read-only access to a workspace's calendar. A token is the
// sole lookup key for the public read path, so it must stay unique across
// all workspaces.
type ShareTokenService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	postService         *posts_services.PostService
	auditLogService     *audit_logs.AuditLogService
	suffixGenerator     SuffixGenerator
}

// IssueToken stores a fresh share token on the workspace, replacing any
// prior one, which becomes invalid immediately.
func (s *ShareTokenService) IssueToken(
	workspaceID uuid.UUID,
	user *users_models.User,
) (string, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return "", fmt.Errorf("failed to get workspace: %w", err)
	}

	slug := Slugify(workspace.ClientName)
	if slug == "" {
		slug = "client"
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		suffix, err := s.suffixGenerator.GenerateSuffix()
		if err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
		}

		token := slug + "-" + suffix

		if taken, err := s.isTokenTaken(token); err != nil {
			return "", err
		} else if taken {
			continue
		}

		workspace.ShareToken = &token

		err = s.workspaceRepository.UpdateWorkspace(workspace)
		if err != nil {
			// Another workspace may have claimed the token between the
			// check and the save; pick a new suffix
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}

			return "", fmt.Errorf("failed to store share token: %w", err)
		}

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Share link issued for workspace: %s", workspace.Name),
			&user.ID,
			&workspace.ID,
		)

		return token, nil
	}

	return "", fmt.Errorf(
		"%w: could not generate a unique share token after %d attempts",
		apperrors.ErrStorageFailure,
		maxTokenAttempts,
	)
}

// RevokeToken clears the workspace's share token. Previously shared URLs
// resolve to NotFound afterwards.
func (s *ShareTokenService) RevokeToken(workspaceID uuid.UUID, user *users_models.User) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: workspace does not exist", apperrors.ErrNotFound)
		}

		return fmt.Errorf("failed to get workspace: %w", err)
	}

	workspace.ShareToken = nil

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return fmt.Errorf("failed to revoke share token: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Share link revoked for workspace: %s", workspace.Name),
		&user.ID,
		&workspace.ID,
	)

	return nil
}

// GetPublicCalendar resolves a share token to its workspace and returns
// the posts for the requested month, defaulting to the current one.
func (s *ShareTokenService) GetPublicCalendar(
	token string,
	month, year *int,
) (*PublicCalendarResponseDTO, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: share token is not recognized", apperrors.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}

	now := time.Now().UTC()

	requestedMonth := int(now.Month())
	if month != nil {
		requestedMonth = *month
	}

	requestedYear := now.Year()
	if year != nil {
		requestedYear = *year
	}

	posts, err := s.postService.GetMonthPosts(workspace.ID, requestedMonth, requestedYear)
	if err != nil {
		return nil, err
	}

	return &PublicCalendarResponseDTO{
		Workspace: workspace,
		Posts:     posts,
	}, nil
}

func (s *ShareTokenService) isTokenTaken(token string) (bool, error) {
	_, err := s.workspaceRepository.GetWorkspaceByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check share token uniqueness: %w", err)
	}

	return true, nil
}
