package utils

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSizeKB is the upload limit for a single product image.
const MaxImageSizeKB = 500

// FileStorage writes and removes uploaded files under a single root. The
// same root is used for saving and deleting, so files written at create time
// are always found again at delete time.
type FileStorage struct {
	Root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{Root: root}
}

// CheckFileSize reports whether the upload fits within maxKB kilobytes.
func CheckFileSize(file *multipart.FileHeader, maxKB int64) bool {
	return file.Size <= maxKB*1024
}

// CheckFileType reports whether the declared content type starts with the
// given prefix, e.g. "image/".
func CheckFileType(file *multipart.FileHeader, prefix string) bool {
	return strings.HasPrefix(file.Header.Get("Content-Type"), prefix)
}

// Save writes the upload under the root as "{uuid} {original-name}" and
// returns the stored file name.
func (s *FileStorage) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", fmt.Errorf("create image root: %w", err)
	}

	name := uuid.NewString() + " " + filepath.Base(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Root, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filepath.Join(s.Root, name))
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// SaveAll writes every upload and returns the stored names in submission
// order. If any write fails, files already written are removed so a failed
// submission leaves nothing behind.
func (s *FileStorage) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(files))
	for _, file := range files {
		name, err := s.Save(file)
		if err != nil {
			s.RemoveAll(names)
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Remove deletes a stored file by name. A file that is already gone is not
// an error.
func (s *FileStorage) Remove(name string) error {
	err := os.Remove(filepath.Join(s.Root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemoveAll deletes the named files, logging failures instead of stopping.
func (s *FileStorage) RemoveAll(names []string) {
	for _, name := range names {
		if err := s.Remove(name); err != nil {
			log.Printf("Error removing file %s: %v", name, err)
		}
	}
}
