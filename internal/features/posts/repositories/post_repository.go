package posts_repositories

import (
	"errors"
	"time"

	posts_models "planboard-backend/internal/features/posts/models"
	"planboard-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct{}

// UpsertByWorkspaceAndDate creates the post for (workspaceID, date) or
// replaces the existing one in place. Platform rows are always dropped and
// recreated, never merged. The whole operation runs in one transaction;
// the unique index on (workspace_id, date) turns a concurrent duplicate
// insert into a conflict that is retried as an update.
func (r *PostRepository) UpsertByWorkspaceAndDate(
	workspaceID uuid.UUID,
	date time.Time,
	description string,
	platforms []posts_models.Platform,
) (*posts_models.Post, error) {
	var result *posts_models.Post

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		var existing posts_models.Post

		err := tx.Where("workspace_id = ? AND date = ?", workspaceID, date).
			First(&existing).Error

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, createErr := r.createPost(tx, workspaceID, date, description, platforms)
			if createErr == nil {
				result = created
				return nil
			}

			if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return createErr
			}

			// Lost the race against a concurrent upsert for the same day;
			// fall through and treat it as an update
			err = tx.Where("workspace_id = ? AND date = ?", workspaceID, date).
				First(&existing).Error
			if err != nil {
				return err
			}
		}

		updated, err := r.replacePost(tx, &existing, description, platforms)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostRepository) createPost(
	tx *gorm.DB,
	workspaceID uuid.UUID,
	date time.Time,
	description string,
	platforms []posts_models.Platform,
) (*posts_models.Post, error) {
	now := time.Now().UTC()

	post := &posts_models.Post{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := tx.Omit("Platforms").Create(post).Error; err != nil {
		return nil, err
	}

	attached, err := r.createPlatforms(tx, post.ID, platforms)
	if err != nil {
		return nil, err
	}

	post.Platforms = attached
	return post, nil
}

func (r *PostRepository) replacePost(
	tx *gorm.DB,
	existing *posts_models.Post,
	description string,
	platforms []posts_models.Platform,
) (*posts_models.Post, error) {
	err := tx.Where("post_id = ?", existing.ID).Delete(&posts_models.Platform{}).Error
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	err = tx.Model(&posts_models.Post{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"description": description,
			"updated_at":  now,
		}).Error
	if err != nil {
		return nil, err
	}

	attached, err := r.createPlatforms(tx, existing.ID, platforms)
	if err != nil {
		return nil, err
	}

	existing.Description = description
	existing.UpdatedAt = now
	existing.Platforms = attached

	return existing, nil
}

func (r *PostRepository) createPlatforms(
	tx *gorm.DB,
	postID uuid.UUID,
	platforms []posts_models.Platform,
) ([]posts_models.Platform, error) {
	attached := make([]posts_models.Platform, 0, len(platforms))

	for _, platform := range platforms {
		attached = append(attached, posts_models.Platform{
			ID:     uuid.New(),
			PostID: postID,
			Name:   platform.Name,
			URL:    platform.URL,
		})
	}

	if len(attached) == 0 {
		return attached, nil
	}

	if err := tx.Create(&attached).Error; err != nil {
		return nil, err
	}

	return attached, nil
}

func (r *PostRepository) FindByID(postID uuid.UUID) (*posts_models.Post, error) {
	var post posts_models.Post

	err := storage.GetDb().Preload("Platforms").Where("id = ?", postID).First(&post).Error
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// FindByWorkspaceAndDateRange returns posts with date in [from, to),
// platforms attached, ordered ascending by date.
func (r *PostRepository) FindByWorkspaceAndDateRange(
	workspaceID uuid.UUID,
	from, to time.Time,
) ([]*posts_models.Post, error) {
	var posts []*posts_models.Post

	err := storage.GetDb().
		Preload("Platforms").
		Where("workspace_id = ? AND date >= ? AND date < ?", workspaceID, from, to).
		Order("date ASC").
		Find(&posts).Error

	return posts, err
}

// DeletePost removes the post and its platform rows in one transaction.
func (r *PostRepository) DeletePost(postID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.Where("post_id = ?", postID).Delete(&posts_models.Platform{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&posts_models.Post{}, "id = ?", postID).Error
	})
}
