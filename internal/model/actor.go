package model

// Actor — принципал, от имени которого выполняется запрос.
// nil-указатель означает анонимный запрос: политика доступа
// в этом случае разрешает только публичные ресурсы.
// Для решений о доступе достаточно ID; остальные атрибуты
// пользователя сервисы читают из базы, когда они нужны в ответе.
type Actor struct {
	ID int64
}
