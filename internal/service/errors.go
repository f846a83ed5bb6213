package service

import (
	"errors"
	"strings"
)

// Сигнальные ошибки сервисного слоя. Хендлеры переводят их в HTTP-статусы.
var (
	ErrNotFound           = errors.New("not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError перечисляет поля, не прошедшие валидацию.
// Операция при этом не применяется даже частично.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}
