package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type portfolioValueRequest struct {
	Symbols []string `json:"symbols"`
}

func (h ApiHandler) portfolioValue(c *gin.Context) {
	var requestBody portfolioValueRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio request: %w", err), c, 400)
		return
	}
	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("portfolio request needs at least one symbol"), c, 400)
		return
	}

	value, err := h.CryptoService.PortfolioValue(c.Request.Context(), requestBody.Symbols)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to value portfolio: %w", err), c)
		return
	}

	c.JSON(200, value)
}
