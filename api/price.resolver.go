package api

import (
	"coinwatch/internal/domain"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type priceResponse struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

func (h ApiHandler) price(c *gin.Context) {
	symbol := c.Param("symbol")

	price, err := h.CryptoService.GetPrice(c.Request.Context(), symbol)
	if errors.Is(err, domain.ErrNotFound) {
		returnErrorJsonCode(err, c, 404)
		return
	}
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get price: %w", err), c)
		return
	}

	c.JSON(200, priceResponse{
		Symbol:   symbol,
		Price:    price,
		Currency: h.Cfg.DefaultCurrency,
	})
}
