package share

import (
	"net/http"
	"strconv"

	users_middleware "planboard-backend/internal/features/users/middleware"
	"planboard-backend/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShareController struct {
	shareTokenService *ShareTokenService
}

func (c *ShareController) RegisterRoutes(router *gin.RouterGroup) {
	shareRoutes := router.Group("/share")

	shareRoutes.POST("/:workspaceId", c.IssueToken)
	shareRoutes.DELETE("/:workspaceId", c.RevokeToken)
}

// RegisterPublicRoutes mounts the anonymous read path; no auth middleware.
func (c *ShareController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/share/token/:token", c.GetPublicCalendar)
}

// IssueToken
// @Summary Issue a share link
// @Description Generate a public read-only token for a workspace's calendar, replacing any prior one
// @Tags share
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} share.IssueShareTokenResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /share/{workspaceId} [post]
func (c *ShareController) IssueToken(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	token, err := c.shareTokenService.IssueToken(workspaceID, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, IssueShareTokenResponseDTO{ShareToken: token})
}

// RevokeToken
// @Summary Revoke a share link
// @Description Invalidate the workspace's public share token
// @Tags share
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /share/{workspaceId} [delete]
func (c *ShareController) RevokeToken(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	if err := c.shareTokenService.RevokeToken(workspaceID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPublicCalendar
// @Summary Public calendar view
// @Description Resolve a share token and return the workspace with its posts for the month; defaults to the current month
// @Tags share
// @Produce json
// @Param token path string true "Share token"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} share.PublicCalendarResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /share/token/{token} [get]
func (c *ShareController) GetPublicCalendar(ctx *gin.Context) {
	token := ctx.Param("token")

	var month, year *int

	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		month = &parsed
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = &parsed
	}

	response, err := c.shareTokenService.GetPublicCalendar(token, month, year)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
