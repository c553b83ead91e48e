package main

import (
	"flag"
	"log"

	"am-hris/internal/app"
	"am-hris/internal/bootstrap"
	"am-hris/internal/config"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunAPI(cfg, logger); err != nil {
		logger.Fatal("api exited", zap.Error(err))
	}
}
