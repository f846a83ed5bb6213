package service

import "PhotoGallery/internal/model"

// Политика доступа: чистые функции без побочных эффектов.
// Владение — единственная форма прав: ни админов, ни совместного доступа.

// CanView — ресурс видим, если он публичный или принадлежит актору.
// Анонимному актору (nil) доступны только публичные ресурсы.
func CanView(ownerID int64, isPublic bool, actor *model.Actor) bool {
	if isPublic {
		return true
	}
	return actor != nil && actor.ID == ownerID
}

// CanMutate — изменять и удалять ресурс может только владелец.
func CanMutate(ownerID int64, actor *model.Actor) bool {
	return actor != nil && actor.ID == ownerID
}
