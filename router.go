package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dattgoswami/spreadsheet-backend-library/contracts"
)

const ApiVersion = "v1"

const undoPath = "undo"
const redoPath = "redo"
const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	if logger != nil {
		router.Use(RequestLogger(logger))
	}

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/:sheet_id/"+undoPath, controller.UndoAction)
	apiRouterGroup.POST("/:sheet_id/"+redoPath, controller.RedoAction)
	apiRouterGroup.POST("/:sheet_id/:cell_id/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.POST("/:sheet_id/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)
	apiRouterGroup.GET("/:sheet_id", controller.GetSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// RequestLogger tags every request with an id and logs it through slog.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.NewString()
		c.Set("request_id", requestId)
		start := time.Now()

		c.Next()

		logger.Info("request",
			"request_id", requestId,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
