package main

import (
	"goldentower/config"
	"goldentower/di"
	"goldentower/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
