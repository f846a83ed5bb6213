package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"PhotoGallery/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Username: "john", FullName: "John Doe", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	// поиск по имени — найдено
	got, err := r.GetUserByUsername(ctx, "john")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "John Doe", got.FullName)

	// уникальный username — вторая вставка должна дать ошибку
	_, err = r.CreateUser(ctx, &model.User{Username: "john", Password: "x"})
	assert.Error(t, err)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByUsername(ctx, "doesnotexist")
	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
