package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/rohits-web03/qrdrop/internal/api"
	"github.com/rohits-web03/qrdrop/internal/api/handlers"
	"github.com/rohits-web03/qrdrop/internal/config"
	"github.com/rohits-web03/qrdrop/internal/insights"
	"github.com/rohits-web03/qrdrop/internal/storage"
	"github.com/rohits-web03/qrdrop/internal/store"
)

func main() {
	cfg := config.Load()

	var (
		users store.UserStore
		files store.FileStore
	)
	switch cfg.StoreBackend {
	case "postgres":
		db, err := store.ConnectDatabase(cfg.DBURL)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		users, files = db, db
	default:
		js, err := store.NewJSONStore(afero.NewOsFs(), cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to open JSON store: ", err)
		}
		users, files = js, js
		log.Println("Using flat-file metadata store in", cfg.DataDir)
	}

	var (
		blobs      storage.BlobStore
		uploadsDir string
	)
	switch cfg.StorageBackend {
	case "s3":
		s3, err := storage.NewS3Store(
			cfg.R2.AccessKeyID, cfg.R2.SecretAccessKey,
			cfg.R2.AccountID, cfg.R2.BucketName, cfg.R2.Region,
			cfg.PublicBaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize storage: ", err)
		}
		blobs = s3
	default:
		local, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
		if err != nil {
			log.Fatal("Failed to initialize storage: ", err)
		}
		blobs = local
		uploadsDir = local.Dir()
	}

	annotator := insights.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)

	h := handlers.New(cfg, users, files, blobs, annotator)
	mux := api.SetupRouter(cfg, h, uploadsDir)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
		// Header timeout guards against slow clients; the read timeout stays
		// generous because multipart uploads can take a while.
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       120 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Starting QR-Drop server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
