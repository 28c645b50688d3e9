package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"RBCDigital/internal/config"
	"RBCDigital/pkg/cms"
	"RBCDigital/pkg/hubspot"
	"RBCDigital/pkg/log"
	"RBCDigital/pkg/redis"
	"RBCDigital/pkg/smtp"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	contentSource := cms.FromEnv(logger)
	cache := redis.New()
	hubspotClient := hubspot.New(logger)
	smtpMailer := smtp.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithContentSource(contentSource),
		config.WithSeedCatalog(),
		config.WithRedisCache(cache),
		config.WithHubspotClient(hubspotClient),
		config.WithSMTPMailer(smtpMailer),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
