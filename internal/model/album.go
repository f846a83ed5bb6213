package model

import "time"

// Album — именованная коллекция фотографий одного владельца.
type Album struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:255"`
	EventDate   *time.Time
	IsPublic    bool `gorm:"not null"`

	UserID int64 `gorm:"not null;index"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// CoverPhotoID — обложка альбома; фото обязано принадлежать этому же
	// альбому (проверяется в сервисе). При удалении фото ссылка обнуляется.
	CoverPhotoID *int64 `gorm:"index"`
	CoverPhoto   *Photo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	Photos []Photo `gorm:"foreignKey:AlbumID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
