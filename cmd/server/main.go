package main

import (
	"fmt"
	"log"

	"trimatch/internal/config"
	"trimatch/internal/domain"
	"trimatch/internal/handler"
	"trimatch/internal/ocr/noop"
	"trimatch/internal/repository/postgres"
	"trimatch/internal/router"
	"trimatch/internal/service"
	s3storage "trimatch/internal/storage/s3"
	"trimatch/internal/textextract"
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
	sessionRepo := postgres.NewSessionRepo(db)
	docRepo := postgres.NewSessionDocumentRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize text acquisition
	extractor := textextract.New(noop.NewRecognizer(), textextract.Options{
		Language:             cfg.OCR.Language,
		MaxPages:             cfg.OCR.MaxPages,
		ResolutionDPI:        cfg.OCR.ResolutionDPI,
		ForceFullRecognition: cfg.OCR.ForceFullRecognition,
		LayoutHint:           domain.LayoutHint(cfg.OCR.LayoutHint),
	})

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT, cfg.Admin)
	fileSvc := service.NewFileService(fileRepo, s3Client, &cfg.S3)
	sessionSvc := service.NewSessionService(sessionRepo, docRepo, fileRepo, s3Client, extractor, cfg.Matching.AmountTolerancePct)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	fileH := handler.NewFileHandler(fileSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, fileH, sessionH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
