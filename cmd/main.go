package main

import (
	"sweatfix/config"
	"sweatfix/logger"
	"sweatfix/routes"
	"sweatfix/services"

	"go.uber.org/zap"
)

func main() {
	config.InitDB() // also loads .env
	logger.Init(config.IsProduction())
	defer logger.Sync()

	hub := services.NewRealtimeHub()
	services.InitEventDeps(hub)
	coach := services.NewCoachService()

	r := routes.SetupRouter(hub, coach)

	addr := config.ListenAddr()
	logger.L.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L.Fatal("server exited", zap.Error(err))
	}
}
