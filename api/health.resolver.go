package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status    string         `json:"status"`
	Service   string         `json:"service"`
	Timestamp string         `json:"timestamp"`
	Database  healthDatabase `json:"database"`
	Api       healthApi      `json:"api"`
}

type healthDatabase struct {
	Available      bool  `json:"available"`
	TotalSnapshots int64 `json:"totalSnapshots"`
}

type healthApi struct {
	Configured bool `json:"configured"`
}

// health always answers UP - the process can serve from the static tier
// with everything else down. The payload says which tiers are live.
func (h ApiHandler) health(c *gin.Context) {
	status := h.CryptoService.Status()

	c.JSON(200, healthResponse{
		Status:    "UP",
		Service:   "coinwatch",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database: healthDatabase{
			Available:      status.DatabaseAvailable,
			TotalSnapshots: status.TotalSnapshots,
		},
		Api: healthApi{
			Configured: status.ApiKeyConfigured,
		},
	})
}
