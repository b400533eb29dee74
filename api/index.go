package handler

import (
	"net/http"
	"goldentower/config"
	"goldentower/di"
	"goldentower/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
