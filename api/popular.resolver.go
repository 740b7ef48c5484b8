package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}

	return limit, nil
}

func (h ApiHandler) popular(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	assets, err := h.CryptoService.GetPopular(c.Request.Context(), limit)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list popular assets: %w", err), c)
		return
	}

	c.JSON(200, assets)
}

func (h ApiHandler) popularFresh(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	assets, err := h.CryptoService.GetPopularFresh(c.Request.Context(), limit)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list fresh assets: %w", err), c)
		return
	}

	c.JSON(200, assets)
}

func (h ApiHandler) top5(c *gin.Context) {
	assets, err := h.CryptoService.GetPopular(c.Request.Context(), 5)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list top assets: %w", err), c)
		return
	}

	c.JSON(200, assets)
}
