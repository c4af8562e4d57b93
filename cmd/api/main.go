package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

func main() {
	// Local development reads .env; production uses real env vars.
	envFileErr := godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)
	if envFileErr != nil {
		logger.Info("no .env file found, using system environment", nil)
	}

	Serve()
}
