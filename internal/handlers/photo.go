package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"PhotoGallery/internal/config"
	"PhotoGallery/internal/service"
	"PhotoGallery/internal/storage"
)

// PhotoHandler — HTTP-обвязка над PhotoService: разбор запроса,
// сохранение multipart-файла, сериализация ответа.
type PhotoHandler struct {
	Service *service.PhotoService
	Storage storage.FileStorage
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewPhotoHandler(svc *service.PhotoService, st storage.FileStorage, logger *zap.SugaredLogger, cfg *config.Config) *PhotoHandler {
	return &PhotoHandler{Service: svc, Storage: st, Logger: logger, Config: cfg}
}

// List — GET /api/photos?page=&pageSize=&search=&userId=
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := service.ListPhotosParams{Search: q.Get("search")}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		params.PageSize = v
	}
	if raw := q.Get("userId"); raw != "" {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid userId")
			return
		}
		params.OwnerID = &uid
	}

	page, err := h.Service.List(r.Context(), actorFromRequest(r), params)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	items := make([]photoDTO, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPhotoDTO(&page.Items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":     items,
		"total":     page.Total,
		"page":      page.Page,
		"pageSize":  page.PageSize,
		"pageCount": page.PageCount,
	})
}

// Get — GET /api/photos/{id}
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	photo, err := h.Service.Get(r.Context(), actorFromRequest(r), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"photo": toPhotoDTO(photo)})
}

// Upload — POST /api/photos, multipart/form-data с файлом в поле "photo".
// Файл сначала сохраняется в хранилище, затем пишутся метаданные;
// при неудаче записи сервис удалит сохранённый файл.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	maxBytes := h.Config.UploadMaxMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	params := service.CreatePhotoParams{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Tags:        r.FormValue("tags"),
		Mimetype:    header.Header.Get("Content-Type"),
	}
	if raw := r.FormValue("isPublic"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid isPublic")
			return
		}
		params.IsPublic = &v
	}
	if raw := r.FormValue("albumId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid albumId")
			return
		}
		params.AlbumID = &v
	}

	stored, err := h.Storage.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.Logger.Errorw("failed to store uploaded file", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	photo, err := h.Service.Create(r.Context(), actor, params, stored)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "photo uploaded successfully",
		"photo":   toPhotoDTO(photo),
	})
}

type updatePhotoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	IsPublic    *bool   `json:"isPublic"`
}

// Update — PUT /api/photos/{id}, частичное обновление метаданных.
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	photo, err := h.Service.Update(r.Context(), actor, id, service.UpdatePhotoParams{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "photo updated successfully",
		"photo":   toPhotoDTO(photo),
	})
}

// Delete — DELETE /api/photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), actor, id); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "photo deleted successfully"})
}
