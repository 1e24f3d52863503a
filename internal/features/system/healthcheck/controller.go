package system_healthcheck

import (
	"net/http"

	"planboard-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct{}

var healthcheckController = &HealthcheckController{}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.Healthcheck)
}

// Healthcheck
// @Summary Healthcheck
// @Description Report whether the service and its database are reachable
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	sqlDb, err := storage.GetDb().DB()
	if err == nil {
		err = sqlDb.Ping()
	}

	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
