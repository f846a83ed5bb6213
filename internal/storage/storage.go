package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StoredFile — результат сохранения файла в хранилище.
type StoredFile struct {
	Filename string // имя файла внутри хранилища
	Path     string // путь, по которому файл можно прочитать или удалить
	Size     int64
}

// FileStorage — коллаборатор хранения файловых артефактов.
// Remove обязан быть идемпотентным: удаление отсутствующего файла — не ошибка.
type FileStorage interface {
	Save(ctx context.Context, originalName string, src io.Reader) (*StoredFile, error)
	Remove(ctx context.Context, path string) error
}

// DiskStorage хранит файлы на локальном диске в одном каталоге.
type DiskStorage struct {
	baseDir string
}

// NewDiskStorage создаёт каталог хранилища, если его ещё нет.
func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStorage{baseDir: baseDir}, nil
}

// Save записывает содержимое под уникальным именем, расширение берётся
// из исходного имени файла.
func (s *DiskStorage) Save(_ context.Context, originalName string, src io.Reader) (*StoredFile, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.baseDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path) // не оставляем половину файла
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &StoredFile{Filename: name, Path: path, Size: size}, nil
}

// Remove удаляет файл; отсутствие файла не считается ошибкой.
func (s *DiskStorage) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
