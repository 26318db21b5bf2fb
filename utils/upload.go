package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUploadedImage stores the file under folder with a generated name and
// returns the public URL ("/uploads/<name>") stored on the record.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, folder string) (string, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(folder, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(path), nil
}

// RemoveImage deletes the file behind a stored image URL. Best effort: a
// missing file is not an error the caller can act on.
func RemoveImage(imageURL string) error {
	if imageURL == "" {
		return nil
	}
	return os.Remove(filepath.FromSlash(strings.TrimPrefix(imageURL, "/")))
}
