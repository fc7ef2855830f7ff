package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
)

// MaxImageSizeBytes is the upper bound for a single uploaded image file.
const MaxImageSizeBytes = 500 * 1024

// imageWebPrefix is the URL path prefix under which stored images are
// served. The value persisted in the database uses this prefix so that
// clients can fetch the image directly.
const imageWebPrefix = "uploads/images"

var allowedImageExtensions = map[string]string{
	".png":  "png",
	".jpg":  "jpg",
	".jpeg": "jpeg",
}

// imageFileStorage is the file-system implementation of [ImageFileStorage].
// Files are stored flat in a single uploads directory under random
// UUID-based names, so client-supplied filenames never reach the disk.
type imageFileStorage struct {
	uploadsDir string
	generator  *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewImageFileStorage constructs an [ImageFileStorage] rooted at uploadsDir.
// The directory is created if it does not exist.
func NewImageFileStorage(uploadsDir string, log *logger.Logger) (ImageFileStorage, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Err(err).Str("func", "NewImageFileStorage").Str("dir", uploadsDir).Msg("failed to create uploads directory")
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &imageFileStorage{
		uploadsDir: uploadsDir,
		generator:  utils.NewUUIDGenerator(),
		logger:     log,
	}, nil
}

// SaveImage writes the uploaded file to the uploads directory under a fresh
// UUID-based name and returns the web path to store alongside the owning
// record.
//
// The upload is rejected with [ErrUnsupportedImageType] unless the original
// filename carries a .png, .jpg, or .jpeg extension, and with
// [ErrImageTooLarge] when the declared size or the actual content exceeds
// [MaxImageSizeBytes].
func (s *imageFileStorage) SaveImage(ctx context.Context, file io.Reader, filename string, size int64) (string, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		log.Warn().
			Str("func", "imageFileStorage.SaveImage").
			Str("filename", filename).
			Msg("rejected upload with unsupported extension")
		return "", ErrUnsupportedImageType
	}

	if size > MaxImageSizeBytes {
		log.Warn().
			Str("func", "imageFileStorage.SaveImage").
			Int64("size", size).
			Msg("rejected upload exceeding size limit")
		return "", ErrImageTooLarge
	}

	name := s.generator.Generate() + ext
	dstPath := filepath.Join(s.uploadsDir, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).
			Str("func", "imageFileStorage.SaveImage").
			Str("path", dstPath).
			Msg("failed to create image file")
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	// LimitReader guards against a lying Content-Length: one byte over the
	// cap means the upload is oversized.
	written, err := io.Copy(dst, io.LimitReader(file, MaxImageSizeBytes+1))
	if err != nil {
		os.Remove(dstPath)
		log.Err(err).
			Str("func", "imageFileStorage.SaveImage").
			Str("path", dstPath).
			Msg("failed to write image file")
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if written > MaxImageSizeBytes {
		os.Remove(dstPath)
		log.Warn().
			Str("func", "imageFileStorage.SaveImage").
			Int64("written", written).
			Msg("rejected upload exceeding size limit")
		return "", ErrImageTooLarge
	}

	return path.Join(imageWebPrefix, name), nil
}

// DeleteImage removes a previously stored image given its web path.
// A missing file is not an error: the goal state (no file) is already met.
func (s *imageFileStorage) DeleteImage(ctx context.Context, imagePath string) error {
	log := logger.FromContext(ctx)

	if imagePath == "" {
		return nil
	}

	// only the final path element is trusted; the file always lives flat
	// in the uploads directory
	name := filepath.Base(filepath.FromSlash(imagePath))
	fullPath := filepath.Join(s.uploadsDir, name)

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		log.Err(err).
			Str("func", "imageFileStorage.DeleteImage").
			Str("path", fullPath).
			Msg("failed to remove image file")
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	return nil
}
