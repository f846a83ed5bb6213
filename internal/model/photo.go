package model

import "time"

// Photo — запись о загруженном изображении.
// Файловые поля (Filename/Filepath/Filesize/Mimetype) заполняются один раз
// при создании и далее не изменяются.
type Photo struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`

	Filename string `gorm:"size:255;not null"`
	Filepath string `gorm:"size:500;not null"`
	Filesize int64
	Mimetype string `gorm:"size:50"`

	// Tags — свободный список тегов через запятую, например "beach,sunset".
	Tags     string `gorm:"size:255"`
	IsPublic bool   `gorm:"not null"`

	UserID int64 `gorm:"not null;index"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	AlbumID *int64 `gorm:"index"` // опциональное членство в альбоме
	Album   *Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
