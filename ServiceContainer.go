package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dattgoswami/spreadsheet-backend-library/contracts"
)

type ServiceContainer struct {
	Config             *Config
	Logger             *slog.Logger
	ExpressionExecutor contracts.ExpressionEvaluator
	SheetRepository    contracts.SheetRepository
	WebhookDispatcher  contracts.WebhookDispatcher
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(cfg *Config, logger *slog.Logger) ServiceContainer {
	container := ServiceContainer{Config: cfg, Logger: logger}

	container.ExpressionExecutor = NewExprEvaluator()
	container.SheetRepository = NewSheetRepository(container.ExpressionExecutor, logger, cfg.MaxEvalDepth)
	container.WebhookDispatcher = NewWebhookDispatcher(
		cfg.WebhookWorkers,
		cfg.WebhookQueueSize,
		time.Duration(cfg.WebhookTimeoutMs)*time.Millisecond,
		logger,
	)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)
	container.Router = SetupRouter(container.ApiController, logger)

	return container
}
