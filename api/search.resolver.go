package api

import (
	"coinwatch/internal/domain"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) search(c *gin.Context) {
	assets, err := h.CryptoService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to search assets: %w", err), c)
		return
	}

	c.JSON(200, assets)
}

func (h ApiHandler) details(c *gin.Context) {
	asset, err := h.CryptoService.GetAsset(c.Request.Context(), c.Param("symbol"))
	if errors.Is(err, domain.ErrNotFound) {
		returnErrorJsonCode(err, c, 404)
		return
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get asset details: %w", err), c)
		return
	}

	c.JSON(200, asset)
}
