package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"PhotoGallery/internal/model"
)

// InitDB открывает подключение к БД и прогоняет автомиграции.
// DSN вида postgres:// или postgresql:// — Postgres, всё остальное
// трактуется как путь к файлу SQLite (по умолчанию gallery.db).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "gallery.db"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	// photos и albums ссылаются друг на друга (album_id / cover_photo_id),
	// поэтому FK-констрейнты при миграции не создаются: обнуление ссылок
	// репозитории выполняют явно.
	db, err := gorm.Open(dial, &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Album{}, &model.Photo{}); err != nil {
		return nil, err
	}
	return db, nil
}
