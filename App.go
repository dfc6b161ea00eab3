package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := LoadConfig(os.Getenv("CONFIG_FILEPATH"))
	if err != nil {
		return err
	}

	logger := NewLogger(os.Stdout, cfg.LogLevel)
	container := BuildServiceContainer(cfg, logger)

	container.WebhookDispatcher.Start()
	defer container.WebhookDispatcher.Close()

	logger.Info("listening", "addr", cfg.Listen)
	return http.ListenAndServe(cfg.Listen, container.Router)
}

func NewLogger(out io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: logLevel}))
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
