package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"PhotoGallery/internal/model"
)

// PhotoFilter — явная спецификация выборки фотографий. Строится заново на
// каждый запрос и передаётся одним значением: никакого разделяемого
// состояния построителя запросов.
type PhotoFilter struct {
	ViewerID *int64 // кто смотрит; nil — аноним
	OwnerID  *int64 // явный фильтр по владельцу
	Search   string // подстрока по title/description/tags, без учёта регистра
	Page     int
	PageSize int
}

// PhotoRepository — контракт доступа к фотографиям.
type PhotoRepository interface {
	Create(ctx context.Context, p *model.Photo) error

	// GetByID возвращает фото с владельцем и альбомом.
	GetByID(ctx context.Context, id int64) (*model.Photo, error)

	// List возвращает страницу фотографий по фильтру и общее число
	// подходящих записей. Порядок: новые первыми, при равном времени
	// создания — по убыванию id.
	List(ctx context.Context, f PhotoFilter) ([]model.Photo, int64, error)

	// Update применяет частичное обновление по именам колонок.
	Update(ctx context.Context, id int64, updates map[string]any) error

	// Delete удаляет запись, предварительно обнуляя ссылки-обложки на неё.
	Delete(ctx context.Context, id int64) error

	// SetAlbum выставляет или сбрасывает (albumID == nil) членство в альбоме.
	SetAlbum(ctx context.Context, photoID int64, albumID *int64) error

	// DetachAlbum отвязывает все фотографии альбома (album_id -> NULL).
	DetachAlbum(ctx context.Context, albumID int64) error

	// CountByAlbum возвращает число фотографий по каждому из альбомов.
	CountByAlbum(ctx context.Context, albumIDs []int64) (map[int64]int64, error)
}

type photoRepo struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, p *model.Photo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *photoRepo) GetByID(ctx context.Context, id int64) (*model.Photo, error) {
	var p model.Photo
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Album").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// applyVisibility переводит правила видимости в условия WHERE:
// с фильтром по владельцу — все его записи для него самого и только
// публичные для остальных; без фильтра — публичные плюс свои.
func applyVisibility(q *gorm.DB, ownerID, viewerID *int64) *gorm.DB {
	switch {
	case ownerID != nil:
		q = q.Where("user_id = ?", *ownerID)
		if viewerID == nil || *viewerID != *ownerID {
			q = q.Where("is_public = ?", true)
		}
	case viewerID != nil:
		q = q.Where("is_public = ? OR user_id = ?", true, *viewerID)
	default:
		q = q.Where("is_public = ?", true)
	}
	return q
}

func (r *photoRepo) List(ctx context.Context, f PhotoFilter) ([]model.Photo, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Photo{})
	q = applyVisibility(q, f.OwnerID, f.ViewerID)

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var photos []model.Photo
	err := q.
		Preload("User").
		Preload("Album").
		Order("created_at DESC, id DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&photos).Error
	if err != nil {
		return nil, 0, err
	}
	return photos, total, nil
}

func (r *photoRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *photoRepo) Delete(ctx context.Context, id int64) error {
	// обложки, ссылающиеся на это фото, обнуляются явно
	err := r.db.WithContext(ctx).
		Model(&model.Album{}).
		Where("cover_photo_id = ?", id).
		Update("cover_photo_id", nil).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Photo{}, id).Error
}

func (r *photoRepo) SetAlbum(ctx context.Context, photoID int64, albumID *int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", photoID).
		Update("album_id", albumID).Error
}

func (r *photoRepo) DetachAlbum(ctx context.Context, albumID int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("album_id = ?", albumID).
		Update("album_id", nil).Error
}

func (r *photoRepo) CountByAlbum(ctx context.Context, albumIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(albumIDs))
	if len(albumIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AlbumID int64
		Cnt     int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Select("album_id, COUNT(id) AS cnt").
		Where("album_id IN ?", albumIDs).
		Group("album_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.AlbumID] = row.Cnt
	}
	return counts, nil
}
