// internal/handlers/stats.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/services"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/utils"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GET /api/stats
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}
