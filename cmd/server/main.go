package main

import (
	"net/http"

	"go.uber.org/zap"

	"PhotoGallery/internal/config"
	"PhotoGallery/internal/handlers"
	"PhotoGallery/internal/middleware"
	"PhotoGallery/internal/repo"
	"PhotoGallery/internal/service"
	"PhotoGallery/internal/storage"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	fileStorage, err := storage.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		sugar.Fatalw("failed to initialize file storage", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	photoRepo := repo.NewPhotoRepository(gormDB)
	albumRepo := repo.NewAlbumRepository(gormDB)

	userService := service.NewUserService(userRepo)
	photoService := service.NewPhotoService(photoRepo, albumRepo, fileStorage, sugar)
	albumService := service.NewAlbumService(albumRepo, photoRepo, sugar)

	h := handlers.NewHandler(userService, photoService, albumService, fileStorage, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"UploadDir", cfg.UploadDir,
		"UploadMaxMB", cfg.UploadMaxMB,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
