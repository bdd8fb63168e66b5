package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService uploads submission documents to object storage and returns
// their public URLs.
type StorageService interface {
	UploadFile(ctx context.Context, r io.Reader, filename, destFolder string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
