package main

import (
	"fmt"
	"log"

	"creditsea/internal/config"
	"creditsea/internal/email/noop"
	"creditsea/internal/email/ses"
	"creditsea/internal/extractor"
	"creditsea/internal/handler"
	"creditsea/internal/port"
	"creditsea/internal/repository/postgres"
	"creditsea/internal/router"
	"creditsea/internal/service"
	s3storage "creditsea/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	reportRepo := postgres.NewReportRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize email
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	reportSvc := service.NewReportService(
		reportRepo, storage, emailSender, extractor.New(),
		&cfg.S3, &cfg.Upload, &cfg.Email,
	)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	uploadH := handler.NewUploadHandler(reportSvc, &cfg.Upload)
	reportH := handler.NewReportHandler(reportSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, uploadH, reportH, statsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
