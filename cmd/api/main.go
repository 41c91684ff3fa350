package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"Community_Board/internal/app"
	"Community_Board/internal/config"
	"Community_Board/internal/pkg"
)

func main() {
	conf, err := config.New(".env")
	if err != nil {
		pkg.NewLogger(os.Stderr, "error").Error("read config", "error", err.Error())
		os.Exit(1)
	}

	log := pkg.NewLogger(os.Stdout, conf.LogLevel)
	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(context.Background(), conf, log); err != nil {
		log.Error("application error", "error", err.Error())
		os.Exit(1)
	}

	log.Info("service shut down gracefully")
}
