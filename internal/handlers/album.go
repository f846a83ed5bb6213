package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"PhotoGallery/internal/service"
)

// AlbumHandler — HTTP-обвязка над AlbumService.
type AlbumHandler struct {
	Service *service.AlbumService
	Logger  *zap.SugaredLogger
}

func NewAlbumHandler(svc *service.AlbumService, logger *zap.SugaredLogger) *AlbumHandler {
	return &AlbumHandler{Service: svc, Logger: logger}
}

// List — GET /api/albums?userId=
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	var ownerID *int64
	if raw := r.URL.Query().Get("userId"); raw != "" {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid userId")
			return
		}
		ownerID = &uid
	}

	summaries, err := h.Service.List(r.Context(), actorFromRequest(r), ownerID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	albums := make([]albumDTO, 0, len(summaries))
	for _, s := range summaries {
		albums = append(albums, toAlbumSummaryDTO(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"albums": albums})
}

// Get — GET /api/albums/{id}, альбом с полным списком фотографий.
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	album, err := h.Service.Get(r.Context(), actorFromRequest(r), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"album": toAlbumDetailDTO(album)})
}

type createAlbumRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	EventDate   *time.Time `json:"eventDate"`
	IsPublic    *bool      `json:"isPublic"`
}

// Create — POST /api/albums
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	album, err := h.Service.Create(r.Context(), actor, service.CreateAlbumParams{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		EventDate:   req.EventDate,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "album created successfully",
		"album":   toAlbumDTO(album),
	})
}

type updateAlbumRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	EventDate    *time.Time `json:"eventDate"`
	IsPublic     *bool      `json:"isPublic"`
	CoverPhotoID *int64     `json:"coverPhotoId"`
}

// Update — PUT /api/albums/{id}, частичное обновление.
func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req updateAlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	album, err := h.Service.Update(r.Context(), actor, id, service.UpdateAlbumParams{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		EventDate:    req.EventDate,
		IsPublic:     req.IsPublic,
		CoverPhotoID: req.CoverPhotoID,
	})
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "album updated successfully",
		"album":   toAlbumDTO(album),
	})
}

// Delete — DELETE /api/albums/{id}. Фотографии альбома отвязываются,
// но не удаляются.
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, map[string]string{"message": "album deleted successfully"})
}

// AddPhoto — POST /api/albums/{id}/photos/{photoID}
func (h *AlbumHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	albumID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	photoID, err := idParam(r, "photoID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	if err := h.Service.AddPhoto(r.Context(), actor, albumID, photoID); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "photo added to album successfully"})
}

// RemovePhoto — DELETE /api/albums/{id}/photos/{photoID}
func (h *AlbumHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	albumID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	photoID, err := idParam(r, "photoID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	if err := h.Service.RemovePhoto(r.Context(), actor, albumID, photoID); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "photo removed from album successfully"})
}
