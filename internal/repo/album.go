package repo

import (
	"context"

	"gorm.io/gorm"

	"PhotoGallery/internal/model"
)

// AlbumFilter — спецификация выборки альбомов (видимость как у фотографий).
type AlbumFilter struct {
	ViewerID *int64
	OwnerID  *int64
}

// AlbumRepository — контракт доступа к альбомам.
type AlbumRepository interface {
	Create(ctx context.Context, a *model.Album) error

	// GetByID возвращает альбом с владельцем, обложкой и полным списком
	// фотографий (каждая со своим владельцем), новые фотографии первыми.
	GetByID(ctx context.Context, id int64) (*model.Album, error)

	// List возвращает видимые альбомы с владельцем и обложкой,
	// новые первыми. Список фотографий не загружается.
	List(ctx context.Context, f AlbumFilter) ([]model.Album, error)

	// Update применяет частичное обновление по именам колонок.
	Update(ctx context.Context, id int64, updates map[string]any) error

	Delete(ctx context.Context, id int64) error
}

type albumRepo struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepo{db: db}
}

func (r *albumRepo) Create(ctx context.Context, a *model.Album) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *albumRepo) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	var a model.Album
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("CoverPhoto").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Photos.User").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *albumRepo) List(ctx context.Context, f AlbumFilter) ([]model.Album, error) {
	q := r.db.WithContext(ctx).Model(&model.Album{})
	q = applyVisibility(q, f.OwnerID, f.ViewerID)

	var albums []model.Album
	err := q.
		Preload("User").
		Preload("CoverPhoto").
		Order("created_at DESC, id DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Album{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *albumRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Album{}, id).Error
}
