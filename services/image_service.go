package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// AllowedImageFile reports whether the filename carries a permitted
// image extension.
func AllowedImageFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// SaveTourImage stores an uploaded tour image under uploadDir, keeping the
// client's filename, and returns the stored filename.
func SaveTourImage(file *multipart.FileHeader, uploadDir string) (string, error) {
	filename := filepath.Base(file.Filename)
	if !AllowedImageFile(filename) {
		return "", fmt.Errorf("file extension not allowed: %s", filename)
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return filename, nil
}
