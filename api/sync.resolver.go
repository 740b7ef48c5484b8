package api

import (
	"coinwatch/internal/domain"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) sync(c *gin.Context) {
	result, err := h.CryptoService.Sync(c.Request.Context())
	if errors.Is(err, domain.ErrSourceUnavailable) {
		returnErrorJsonCode(err, c, 502)
		return
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to sync prices: %w", err), c)
		return
	}

	c.JSON(200, result)
}
