package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"PhotoGallery/internal/model"
	"PhotoGallery/internal/repo"
	"PhotoGallery/internal/storage"
)

const (
	defaultPageSize = 20
	maxTitleLen     = 100
)

// PhotoService — бизнес-логика работы с фотографиями: видимость,
// владение, жизненный цикл файлового артефакта.
type PhotoService struct {
	photos  repo.PhotoRepository
	albums  repo.AlbumRepository
	storage storage.FileStorage
	logger  *zap.SugaredLogger
}

func NewPhotoService(photos repo.PhotoRepository, albums repo.AlbumRepository, st storage.FileStorage, logger *zap.SugaredLogger) *PhotoService {
	return &PhotoService{photos: photos, albums: albums, storage: st, logger: logger}
}

// ListPhotosParams — параметры листинга.
type ListPhotosParams struct {
	OwnerID  *int64 // фильтр по владельцу
	Search   string
	Page     int
	PageSize int
}

// PhotoPage — страница результата листинга.
type PhotoPage struct {
	Items     []model.Photo
	Total     int64
	Page      int
	PageSize  int
	PageCount int
}

// List возвращает страницу видимых актору фотографий, новые первыми.
func (s *PhotoService) List(ctx context.Context, actor *model.Actor, p ListPhotosParams) (*PhotoPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}

	f := repo.PhotoFilter{
		OwnerID:  p.OwnerID,
		Search:   p.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if actor != nil {
		f.ViewerID = &actor.ID
	}

	items, total, err := s.photos.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return &PhotoPage{
		Items:     items,
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: int(math.Ceil(float64(total) / float64(p.PageSize))),
	}, nil
}

// Get возвращает фото по id. Несуществующий id — ErrNotFound,
// существующее, но невидимое актору — ErrAccessDenied (именно в таком
// порядке: сначала существование, затем права).
func (s *PhotoService) Get(ctx context.Context, actor *model.Actor, id int64) (*model.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !CanView(photo.UserID, photo.IsPublic, actor) {
		return nil, ErrAccessDenied
	}
	return photo, nil
}

// CreatePhotoParams — метаданные создаваемой фотографии.
// Файл к этому моменту уже сохранён в хранилище (предусловие).
type CreatePhotoParams struct {
	Title       string
	Description string
	Tags        string
	IsPublic    *bool  // nil — публичная по умолчанию
	AlbumID     *int64 // альбом должен существовать, владение им не проверяется
	Mimetype    string
}

// Create сохраняет метаданные фотографии. Владельцем всегда становится
// актор. Если запись не удалась, сохранённый файл удаляется
// (компенсирующее удаление), чтобы не копить осиротевшие артефакты.
func (s *PhotoService) Create(ctx context.Context, actor *model.Actor, p CreatePhotoParams, file *storage.StoredFile) (*model.Photo, error) {
	if actor == nil {
		return nil, ErrAccessDenied
	}

	if p.Title == "" || len(p.Title) > maxTitleLen {
		s.removeStored(ctx, file.Path)
		return nil, &ValidationError{Fields: []string{"title"}}
	}

	// album_id не должен повиснуть на несуществующем альбоме: FK при
	// миграции не создаются, существование проверяется здесь
	if p.AlbumID != nil {
		if _, err := s.albums.GetByID(ctx, *p.AlbumID); err != nil {
			s.removeStored(ctx, file.Path)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	isPublic := true
	if p.IsPublic != nil {
		isPublic = *p.IsPublic
	}

	photo := &model.Photo{
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		IsPublic:    isPublic,
		Filename:    file.Filename,
		Filepath:    file.Path,
		Filesize:    file.Size,
		Mimetype:    p.Mimetype,
		UserID:      actor.ID,
		AlbumID:     p.AlbumID,
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		s.removeStored(ctx, file.Path)
		return nil, err
	}

	return s.photos.GetByID(ctx, photo.ID)
}

// UpdatePhotoParams — частичное обновление: nil-поля не трогаются.
// Файловые поля неизменяемы после создания и здесь не представлены.
type UpdatePhotoParams struct {
	Title       *string
	Description *string
	Tags        *string
	IsPublic    *bool
}

// Update изменяет метаданные фото. Только владелец.
func (s *PhotoService) Update(ctx context.Context, actor *model.Actor, id int64, p UpdatePhotoParams) (*model.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !CanMutate(photo.UserID, actor) {
		return nil, ErrAccessDenied
	}

	if p.Title != nil && (*p.Title == "" || len(*p.Title) > maxTitleLen) {
		return nil, &ValidationError{Fields: []string{"title"}}
	}

	updates := map[string]any{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Tags != nil {
		updates["tags"] = *p.Tags
	}
	if p.IsPublic != nil {
		updates["is_public"] = *p.IsPublic
	}

	if err := s.photos.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.photos.GetByID(ctx, id)
}

// Delete удаляет файл (отсутствие файла не мешает удалению записи),
// затем саму запись. Только владелец.
func (s *PhotoService) Delete(ctx context.Context, actor *model.Actor, id int64) error {
	photo, err := s.photos.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !CanMutate(photo.UserID, actor) {
		return ErrAccessDenied
	}

	// best effort: неудача удаления файла не отменяет удаление записи
	if err := s.storage.Remove(ctx, photo.Filepath); err != nil {
		s.logger.Warnw("failed to remove photo file", "id", id, "path", photo.Filepath, "error", err)
	}

	return s.photos.Delete(ctx, id)
}

func (s *PhotoService) removeStored(ctx context.Context, path string) {
	if err := s.storage.Remove(ctx, path); err != nil {
		s.logger.Warnw("failed to remove stored file after create failure", "path", path, "error", err)
	}
}
