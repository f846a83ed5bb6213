package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"PhotoGallery/internal/model"
)

func TestAlbumRepository_Create_GetByID(t *testing.T) {
	db := newTestDB(t)
	ar := NewAlbumRepository(db)
	pr := NewPhotoRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	album := &model.Album{
		Name:      "Summer trip",
		Location:  "Lisbon",
		EventDate: &when,
		IsPublic:  true,
		UserID:    alice.ID,
	}
	assert.NoError(t, ar.Create(ctx, album))
	assert.NotZero(t, album.ID)

	// наполняем альбом и назначаем обложку
	now := time.Now().UTC()
	older := mkPhoto(t, db, alice.ID, "older", true, now.Add(-2*time.Hour))
	newer := mkPhoto(t, db, alice.ID, "newer", true, now.Add(-1*time.Hour))
	assert.NoError(t, pr.SetAlbum(ctx, older.ID, &album.ID))
	assert.NoError(t, pr.SetAlbum(ctx, newer.ID, &album.ID))
	assert.NoError(t, ar.Update(ctx, album.ID, map[string]any{"cover_photo_id": older.ID}))

	got, err := ar.GetByID(ctx, album.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Summer trip", got.Name)
	if assert.NotNil(t, got.User) {
		assert.Equal(t, "alice", got.User.Username)
	}
	if assert.NotNil(t, got.CoverPhoto) {
		assert.Equal(t, older.ID, got.CoverPhoto.ID)
	}
	// фотографии с владельцами, новые первыми
	if assert.Len(t, got.Photos, 2) {
		assert.Equal(t, "newer", got.Photos[0].Title)
		assert.Equal(t, "older", got.Photos[1].Title)
		if assert.NotNil(t, got.Photos[0].User) {
			assert.Equal(t, "alice", got.Photos[0].User.Username)
		}
	}

	// несуществующий id
	got, err = ar.GetByID(ctx, 99999)
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestAlbumRepository_List_Visibility(t *testing.T) {
	db := newTestDB(t)
	ar := NewAlbumRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")

	assert.NoError(t, ar.Create(ctx, &model.Album{Name: "alice-public", IsPublic: true, UserID: alice.ID}))
	assert.NoError(t, ar.Create(ctx, &model.Album{Name: "alice-private", IsPublic: false, UserID: alice.ID}))
	assert.NoError(t, ar.Create(ctx, &model.Album{Name: "bob-private", IsPublic: false, UserID: bob.ID}))

	// аноним — только публичные
	albums, err := ar.List(ctx, AlbumFilter{})
	assert.NoError(t, err)
	if assert.Len(t, albums, 1) {
		assert.Equal(t, "alice-public", albums[0].Name)
	}

	// alice — публичные плюс свои
	albums, err = ar.List(ctx, AlbumFilter{ViewerID: &alice.ID})
	assert.NoError(t, err)
	assert.Len(t, albums, 2)

	// фильтр по владельцу для чужого зрителя
	albums, err = ar.List(ctx, AlbumFilter{ViewerID: &bob.ID, OwnerID: &alice.ID})
	assert.NoError(t, err)
	if assert.Len(t, albums, 1) {
		assert.Equal(t, "alice-public", albums[0].Name)
	}
}

func TestAlbumRepository_Update_Delete(t *testing.T) {
	db := newTestDB(t)
	ar := NewAlbumRepository(db)
	ctx := context.Background()

	alice := mkUser(t, db, "alice")
	album := &model.Album{Name: "before", IsPublic: true, UserID: alice.ID}
	assert.NoError(t, ar.Create(ctx, album))

	assert.NoError(t, ar.Update(ctx, album.ID, map[string]any{"name": "after", "is_public": false}))
	got, err := ar.GetByID(ctx, album.ID)
	assert.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.False(t, got.IsPublic)

	assert.NoError(t, ar.Delete(ctx, album.ID))
	_, err = ar.GetByID(ctx, album.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
