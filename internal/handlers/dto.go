package handlers

import (
	"time"

	"PhotoGallery/internal/model"
	"PhotoGallery/internal/service"
)

// DTO для сериализации: имена полей повторяют контракт API
// (camelCase), наружу уходят только атрибуты из схемы сущностей.

type userDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type albumRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type coverPhotoDTO struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
}

type photoDTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Filename    string       `json:"filename"`
	Filepath    string       `json:"filepath"`
	Filesize    int64        `json:"filesize"`
	Mimetype    string       `json:"mimetype"`
	Tags        string       `json:"tags,omitempty"`
	IsPublic    bool         `json:"isPublic"`
	UserID      int64        `json:"userId"`
	AlbumID     *int64       `json:"albumId"`
	User        *userDTO     `json:"user,omitempty"`
	Album       *albumRefDTO `json:"album,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type albumDTO struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Location     string         `json:"location,omitempty"`
	EventDate    *time.Time     `json:"eventDate,omitempty"`
	IsPublic     bool           `json:"isPublic"`
	UserID       int64          `json:"userId"`
	CoverPhotoID *int64         `json:"coverPhotoId"`
	User         *userDTO       `json:"user,omitempty"`
	CoverPhoto   *coverPhotoDTO `json:"coverPhoto,omitempty"`
	PhotoCount   *int64         `json:"photoCount,omitempty"`
	Photos       []photoDTO     `json:"photos,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func toUserDTO(u *model.User) *userDTO {
	if u == nil {
		return nil
	}
	return &userDTO{ID: u.ID, Username: u.Username, FullName: u.FullName}
}

func toPhotoDTO(p *model.Photo) photoDTO {
	dto := photoDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Filename:    p.Filename,
		Filepath:    p.Filepath,
		Filesize:    p.Filesize,
		Mimetype:    p.Mimetype,
		Tags:        p.Tags,
		IsPublic:    p.IsPublic,
		UserID:      p.UserID,
		AlbumID:     p.AlbumID,
		User:        toUserDTO(p.User),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Album != nil {
		dto.Album = &albumRefDTO{ID: p.Album.ID, Name: p.Album.Name}
	}
	return dto
}

func toAlbumDTO(a *model.Album) albumDTO {
	dto := albumDTO{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Location:     a.Location,
		EventDate:    a.EventDate,
		IsPublic:     a.IsPublic,
		UserID:       a.UserID,
		CoverPhotoID: a.CoverPhotoID,
		User:         toUserDTO(a.User),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.CoverPhoto != nil {
		dto.CoverPhoto = &coverPhotoDTO{
			ID:       a.CoverPhoto.ID,
			Filename: a.CoverPhoto.Filename,
			Filepath: a.CoverPhoto.Filepath,
		}
	}
	return dto
}

// toAlbumDetailDTO — альбом с полным списком фотографий.
func toAlbumDetailDTO(a *model.Album) albumDTO {
	dto := toAlbumDTO(a)
	dto.Photos = make([]photoDTO, 0, len(a.Photos))
	for i := range a.Photos {
		dto.Photos = append(dto.Photos, toPhotoDTO(&a.Photos[i]))
	}
	return dto
}

// toAlbumSummaryDTO — строка списка альбомов: с photoCount, без фотографий.
func toAlbumSummaryDTO(s service.AlbumSummary) albumDTO {
	dto := toAlbumDTO(&s.Album)
	count := s.PhotoCount
	dto.PhotoCount = &count
	return dto
}
