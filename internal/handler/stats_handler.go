package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-admin/internal/service"
)

type StatsHandler struct {
	svc    *service.StatsService
	logger *zap.Logger
}

func NewStatsHandler(svc *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, logger: logger}
}

// Stats returns the dashboard counters. Visitor totals come from the
// analytics provider and degrade to zero when it is unreachable.
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
