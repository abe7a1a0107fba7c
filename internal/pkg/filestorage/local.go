package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kaan/etdtrack/internal/pkg/logger"
)

// LocalStorage stores uploaded documents on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating
// the directory if necessary.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// Save writes the stream under a collision-free name and returns the
// name it was stored as. The original filename only contributes its
// extension; the stored name is a uuid.
func (ls *LocalStorage) Save(file io.Reader, originalName string) (string, error) {
	if file == nil {
		return "", fmt.Errorf("no file uploaded")
	}

	ext := filepath.Ext(originalName)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", originalName).Str("saved_as", storedName).Msg("File saved successfully")
	return storedName, nil
}

// Open re-reads a stored file by the name Save returned.
func (ls *LocalStorage) Open(path string) (io.ReadCloser, error) {
	filename := filepath.Base(path)
	if filename == "" || filename == "." || filename == "/" {
		return nil, fmt.Errorf("invalid file path: %s", path)
	}

	f, err := os.Open(filepath.Join(ls.basePath, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return f, nil
}

// Delete removes a stored file. Returns nil if the file is already
// gone.
func (ls *LocalStorage) Delete(path string) error {
	if path == "" {
		return nil
	}

	filename := filepath.Base(path)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", path)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}
