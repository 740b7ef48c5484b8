package api

import (
	"coinwatch/internal/domain"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) analytics(c *gin.Context) {
	symbol := c.Param("symbol")
	timeframe := c.Query("timeframe")

	out, err := h.AnalyticsService.Compute(c.Request.Context(), symbol, timeframe)
	if errors.Is(err, domain.ErrNotFound) {
		returnErrorJsonCode(err, c, 404)
		return
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		returnErrorJsonCode(err, c, 503)
		return
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute analytics: %w", err), c)
		return
	}

	c.JSON(200, out)
}
