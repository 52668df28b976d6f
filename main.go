package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"astroshield/api"
	appconfig "astroshield/config"
	"astroshield/logger"
	"astroshield/reader/nasa"
	"astroshield/reader/usgs"
	"astroshield/resolver"
	"astroshield/writer"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yml", "Path to configuration file")
	flag.Parse()

	cfg, err := appconfig.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service": cfg.Astroshield.Name,
		"version": cfg.Astroshield.Version,
	}).Info("starting astroshield")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Logging.DashboardName != "" {
		logger.InitCloudWatch(cfg.Export.S3.Region, cfg.Astroshield.Name, cfg.Logging.DashboardName)
	}
	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, 30*time.Second)
	}

	var neoSource resolver.NEOSource
	if cfg.Source.NASA.Enabled {
		neoSource = nasa.NewClient(cfg.Source.NASA)
	} else {
		log.WithComponent("main").Info("live NEO lookups disabled; builtin catalog in use")
	}

	var envSource resolver.EnvironmentSource
	if cfg.Source.USGS.Enabled {
		envSource = usgs.NewClient(cfg.Source.USGS)
	} else {
		log.WithComponent("main").Info("live site lookups disabled; builtin profiles in use")
	}

	simService := resolver.NewService(cfg, neoSource, envSource)

	briefingWriter, err := writer.NewBriefingWriter(cfg)
	if err != nil {
		log.WithError(err).Error("failed to create briefing writer")
		os.Exit(1)
	}

	server := api.NewServer(cfg, simService, briefingWriter)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		log.WithComponent("main").WithFields(logger.Fields{"addr": cfg.Server.Addr}).Info("http server listening")
		errChan <- httpServer.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.WithFields(logger.Fields{"signal": sig.String()}).Info("shutdown signal received")
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("http server failed")
		}
	}

	log.Info("starting graceful shutdown")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown timeout exceeded")
		httpServer.Close()
	}

	log.Info("astroshield stopped")
}
