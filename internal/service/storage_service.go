package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService 文件落盘：保存上传文件并返回可寻址路径
type StorageService struct {
	basePath string
}

func NewStorageService(basePath string) (*StorageService, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &StorageService{basePath: basePath}, nil
}

// Store 以uuid文件名保存到 basePath/subdir 下，返回斜杠分隔的相对路径
func (s *StorageService) Store(fh *multipart.FileHeader, subdir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.basePath, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	name := uuid.NewString() + ext
	fullPath := filepath.Join(dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return strings.ReplaceAll(fullPath, string(os.PathSeparator), "/"), nil
}

func (s *StorageService) BasePath() string {
	return s.basePath
}
