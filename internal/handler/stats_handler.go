package handler

import (
	"github.com/gin-gonic/gin"

	"creditsea/internal/service"
)

// StatsHandler handles aggregate statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary handles GET /api/v1/stats/summary
// @Summary Aggregate report statistics
// @Tags stats
// @Produce json
// @Success 200 {object} APIResponse{data=domain.ReportStats} "Aggregate statistics"
// @Router /stats/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.statsService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// ScoreDistribution handles GET /api/v1/stats/score-distribution
// @Summary Credit score distribution
// @Description Report counts and average balances bucketed by 100-point score bands
// @Tags stats
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.ScoreBucket} "Score buckets"
// @Router /stats/score-distribution [get]
func (h *StatsHandler) ScoreDistribution(c *gin.Context) {
	buckets, err := h.statsService.ScoreDistribution(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, buckets)
}
