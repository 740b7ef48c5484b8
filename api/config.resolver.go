package api

import (
	"github.com/gin-gonic/gin"
)

// config echoes the effective runtime settings. Secrets never appear
// here - only whether they are set.
func (h ApiHandler) config(c *gin.Context) {
	c.JSON(200, h.CryptoService.Status())
}
