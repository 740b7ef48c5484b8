package api

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"coinwatch/internal/service"
	"coinwatch/internal/util"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	// Db is nil when the process runs without a database. The request
	// log middleware and every store-backed endpoint degrade instead of
	// failing at startup.
	Db                   *sql.DB
	CryptoService        service.CryptoService
	AnalyticsService     service.AnalyticsService
	ApiRequestRepository repository.ApiRequestRepository
	Cfg                  util.Config
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(attachLogger(logger.New()))
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(302, "/dashboard")
	})
	router.Static("/dashboard", "./static")

	crypto := router.Group("/api/crypto")
	crypto.GET("/health", m.health)
	crypto.GET("/popular", m.popular)
	crypto.GET("/popular-fresh", m.popularFresh)
	crypto.GET("/top5", m.top5)
	crypto.GET("/price/:symbol", m.price)
	crypto.GET("/search", m.search)
	crypto.GET("/details/:symbol", m.details)
	crypto.GET("/sync", m.sync)
	crypto.POST("/sync", m.sync)
	crypto.POST("/portfolio/value", m.portfolioValue)
	crypto.GET("/analytics/:symbol", m.analytics)
	crypto.GET("/config", m.config)
	crypto.GET("/info", m.config)

	return router.Run(fmt.Sprintf(":%d", port))
}

func attachLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), logger.ContextKey, log)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	if m.Db == nil {
		ctx.Next()
		return
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress: util.StringPointer(ctx.ClientIP()),
		Method:    ctx.Request.Method,
		Route:     ctx.Request.URL.Path,
		StartTs:   start,
	})
	if err != nil {
		logger.Warn("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			logger.Warn("failed to finalize api request: %v", err)
		}
	}
}
