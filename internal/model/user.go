package model

import "time"

// User — учётная запись владельца фотографий и альбомов.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"size:50;uniqueIndex;not null"`
	FullName string `gorm:"size:100"`
	Password string `gorm:"not null"` // bcrypt-хеш

	// Связи: удаление пользователя каскадно удаляет его фото и альбомы.
	Photos []Photo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Albums []Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
