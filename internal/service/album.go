package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"PhotoGallery/internal/model"
	"PhotoGallery/internal/repo"
)

// AlbumService — бизнес-логика альбомов: видимость, владение,
// членство фотографий и обложка.
type AlbumService struct {
	albums repo.AlbumRepository
	photos repo.PhotoRepository
	logger *zap.SugaredLogger
}

func NewAlbumService(albums repo.AlbumRepository, photos repo.PhotoRepository, logger *zap.SugaredLogger) *AlbumService {
	return &AlbumService{albums: albums, photos: photos, logger: logger}
}

// AlbumSummary — альбом для списка: сам альбом (с владельцем и обложкой)
// плюс число фотографий, без полного списка.
type AlbumSummary struct {
	Album      model.Album
	PhotoCount int64
}

// List возвращает видимые актору альбомы, новые первыми.
func (s *AlbumService) List(ctx context.Context, actor *model.Actor, ownerID *int64) ([]AlbumSummary, error) {
	f := repo.AlbumFilter{OwnerID: ownerID}
	if actor != nil {
		f.ViewerID = &actor.ID
	}

	albums, err := s.albums.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(albums))
	for _, a := range albums {
		ids = append(ids, a.ID)
	}
	counts, err := s.photos.CountByAlbum(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]AlbumSummary, 0, len(albums))
	for _, a := range albums {
		out = append(out, AlbumSummary{Album: a, PhotoCount: counts[a.ID]})
	}
	return out, nil
}

// Get возвращает альбом с полным списком фотографий. Порядок проверок:
// сначала существование (ErrNotFound), затем видимость (ErrAccessDenied).
func (s *AlbumService) Get(ctx context.Context, actor *model.Actor, id int64) (*model.Album, error) {
	album, err := s.albums.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !CanView(album.UserID, album.IsPublic, actor) {
		return nil, ErrAccessDenied
	}
	return album, nil
}

// CreateAlbumParams — поля создаваемого альбома.
type CreateAlbumParams struct {
	Name        string
	Description string
	Location    string
	EventDate   *time.Time
	IsPublic    *bool // nil — публичный по умолчанию
}

// Create создаёт альбом, владельцем всегда становится актор.
func (s *AlbumService) Create(ctx context.Context, actor *model.Actor, p CreateAlbumParams) (*model.Album, error) {
	if actor == nil {
		return nil, ErrAccessDenied
	}
	if p.Name == "" || len(p.Name) > maxTitleLen {
		return nil, &ValidationError{Fields: []string{"name"}}
	}

	isPublic := true
	if p.IsPublic != nil {
		isPublic = *p.IsPublic
	}

	album := &model.Album{
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		EventDate:   p.EventDate,
		IsPublic:    isPublic,
		UserID:      actor.ID,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}
	return s.albums.GetByID(ctx, album.ID)
}

// UpdateAlbumParams — частичное обновление: nil-поля не трогаются.
type UpdateAlbumParams struct {
	Name         *string
	Description  *string
	Location     *string
	EventDate    *time.Time
	IsPublic     *bool
	CoverPhotoID *int64
}

// Update изменяет альбом. Только владелец. CoverPhotoID принимается
// только если фото состоит в этом же альбоме; иначе значение молча
// игнорируется — это не ошибка, поле остаётся прежним.
func (s *AlbumService) Update(ctx context.Context, actor *model.Actor, id int64, p UpdateAlbumParams) (*model.Album, error) {
	album, err := s.albums.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !CanMutate(album.UserID, actor) {
		return nil, ErrAccessDenied
	}

	if p.Name != nil && (*p.Name == "" || len(*p.Name) > maxTitleLen) {
		return nil, &ValidationError{Fields: []string{"name"}}
	}

	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.EventDate != nil {
		updates["event_date"] = *p.EventDate
	}
	if p.IsPublic != nil {
		updates["is_public"] = *p.IsPublic
	}
	if p.CoverPhotoID != nil {
		photo, err := s.photos.GetByID(ctx, *p.CoverPhotoID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if photo != nil && photo.AlbumID != nil && *photo.AlbumID == album.ID {
			updates["cover_photo_id"] = *p.CoverPhotoID
		} else {
			s.logger.Debugw("cover photo not in album, ignoring", "album_id", id, "cover_photo_id", *p.CoverPhotoID)
		}
	}

	if err := s.albums.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.albums.GetByID(ctx, id)
}

// Delete сначала отвязывает все фотографии альбома (они сохраняются),
// затем удаляет сам альбом. Два отдельных запроса, без транзакции.
func (s *AlbumService) Delete(ctx context.Context, actor *model.Actor, id int64) error {
	album, err := s.albums.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !CanMutate(album.UserID, actor) {
		return ErrAccessDenied
	}

	if err := s.photos.DetachAlbum(ctx, id); err != nil {
		return err
	}
	return s.albums.Delete(ctx, id)
}

// AddPhoto включает фото в альбом. Актор должен владеть И альбомом,
// И фотографией.
func (s *AlbumService) AddPhoto(ctx context.Context, actor *model.Actor, albumID, photoID int64) error {
	album, err := s.albums.GetByID(ctx, albumID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	photo, err := s.photos.GetByID(ctx, photoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !CanMutate(album.UserID, actor) || !CanMutate(photo.UserID, actor) {
		return ErrAccessDenied
	}

	return s.photos.SetAlbum(ctx, photoID, &albumID)
}

// RemovePhoto исключает фото из альбома. Достаточно владеть альбомом,
// владение самой фотографией не требуется.
func (s *AlbumService) RemovePhoto(ctx context.Context, actor *model.Actor, albumID, photoID int64) error {
	album, err := s.albums.GetByID(ctx, albumID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := s.photos.GetByID(ctx, photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanMutate(album.UserID, actor) {
		return ErrAccessDenied
	}

	return s.photos.SetAlbum(ctx, photoID, nil)
}
