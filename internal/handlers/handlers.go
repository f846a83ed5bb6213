package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"PhotoGallery/internal/config"
	"PhotoGallery/internal/middleware"
	"PhotoGallery/internal/service"
	"PhotoGallery/internal/storage"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	photoService *service.PhotoService,
	albumService *service.AlbumService,
	fileStorage storage.FileStorage,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)
	photoHandler := NewPhotoHandler(photoService, fileStorage, logger, cfg)
	albumHandler := NewAlbumHandler(albumService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Photo routes
	r.Route("/api/photos", func(r chi.Router) {
		r.Get("/", photoHandler.List)
		r.Post("/", photoHandler.Upload)
		r.Get("/{id}", photoHandler.Get)
		r.Put("/{id}", photoHandler.Update)
		r.Delete("/{id}", photoHandler.Delete)
	})

	// Album routes
	r.Route("/api/albums", func(r chi.Router) {
		r.Get("/", albumHandler.List)
		r.Post("/", albumHandler.Create)
		r.Get("/{id}", albumHandler.Get)
		r.Put("/{id}", albumHandler.Update)
		r.Delete("/{id}", albumHandler.Delete)
		r.Post("/{id}/photos/{photoID}", albumHandler.AddPhoto)
		r.Delete("/{id}/photos/{photoID}", albumHandler.RemovePhoto)
	})

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Раздача загруженных файлов
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return &Handler{Router: r}
}
