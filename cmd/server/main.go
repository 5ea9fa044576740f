package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"realm-server/internal/agent"
	"realm-server/internal/config"
	"realm-server/internal/engine"
	"realm-server/internal/network"
	"realm-server/internal/server"
	"realm-server/internal/version"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Параметры запуска
	var configPath, port string
	var tickMs, bots int
	flag.StringVar(&configPath, "config", "", "Path to JSON world config (defaults are used when empty)")
	flag.StringVar(&port, "port", os.Getenv("REALM_PORT"), "HTTP port (env REALM_PORT)")
	flag.IntVar(&tickMs, "tick", 0, "Override tick length in milliseconds")
	flag.IntVar(&bots, "bots", 0, "Number of in-process bot players")
	flag.Parse()

	if port == "" {
		port = "8080"
	}

	logger.Log.Infof("Starting %s...", version.Service)
	logger.Log.Info(version.String())

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config")
		}
		cfg = loaded
	}
	if tickMs > 0 {
		cfg.TickMs = tickMs
		if err := cfg.Validate(); err != nil {
			logger.Log.WithError(err).Fatal("Invalid tick override")
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"map_size":      cfg.MapSize,
		"tick_ms":       cfg.TickMs,
		"mobs_per_cell": cfg.MobsPerCell,
	}).Info("World config")

	// 2. Ядро
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameService := engine.NewService(cfg, network.NewBroadcaster())
	loopDone := make(chan struct{})
	go func() {
		gameService.Run(ctx)
		close(loopDone)
	}()

	// Боты подключаются к хабу напрямую, минуя websocket
	for i := 0; i < bots; i++ {
		go agent.NewBot(fmt.Sprintf("bot-%d", i+1), gameService).Run(ctx)
	}

	// 3. HTTP + WebSocket до сигнала остановки
	srv := server.New(gameService, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
		stop()
	}

	logger.Log.Info("Shutting down...")
	<-loopDone
	logger.Log.Info("Done.")
}
