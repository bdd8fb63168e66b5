package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFilename reduces an uploaded filename to a safe public-ID stem:
// base name only, extension dropped (Cloudinary re-derives it), unsafe runes
// collapsed to underscores.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._-")
	if base == "" {
		base = "document"
	}
	return base
}

// UploadFile uploads the reader's content into destFolder under a
// timestamped, sanitized public ID and returns the public URL.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, r io.Reader, filename, destFolder string) (string, error) {
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), sanitizeFilename(filename))

	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       destFolder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload %s: %w", filename, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("StorageServiceImpl: upload rejected for %s: %s", filename, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no URL returned for %s", filename)
	}
	return result.SecureURL, nil
}
