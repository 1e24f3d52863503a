package posts_controllers

import (
	"net/http"

	posts_dto "planboard-backend/internal/features/posts/dto"
	posts_services "planboard-backend/internal/features/posts/services"
	users_middleware "planboard-backend/internal/features/users/middleware"
	"planboard-backend/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostController struct {
	postService *posts_services.PostService
}

func (c *PostController) RegisterRoutes(router *gin.RouterGroup) {
	postRoutes := router.Group("/posts")

	postRoutes.GET("", c.ListPosts)
	postRoutes.POST("", c.UpsertPost)
	postRoutes.DELETE("/:id", c.DeletePost)
}

// ListPosts
// @Summary List posts for a month
// @Description Get a workspace's posts whose date falls in the given month, with month stats
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param workspaceId query string true "Workspace ID"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} posts_dto.ListPostsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	if _, ok := users_middleware.GetUserFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request posts_dto.ListPostsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			gin.H{"error": "workspaceId, month, and year are required"},
		)
		return
	}

	response, err := c.postService.ListPosts(request.WorkspaceID, request.Month, request.Year)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpsertPost
// @Summary Save a day's post
// @Description Create or replace the post for (workspace, date); the platform list fully overwrites the previous one
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body posts_dto.UpsertPostRequestDTO true "Post data"
// @Success 201 {object} posts_models.Post
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts [post]
func (c *PostController) UpsertPost(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request posts_dto.UpsertPostRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	post, err := c.postService.UpsertPost(&request, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// DeletePost
// @Summary Delete a post
// @Description Remove a post and its platform links; deleting an already-removed post succeeds
// @Tags posts
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := c.postService.DeletePost(postID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
