package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// MaxUploadSize caps what the client will read into memory and send.
const MaxUploadSize = 10 << 20 // 10 MiB

// UploadAPI is the slice of the API client the upload service needs.
type UploadAPI interface {
	Upload(ctx context.Context, bucket, filename string, content []byte) (*models.UploadResult, error)
}

// UploadService pushes local files to the API's upload endpoint.
type UploadService interface {
	UploadFile(ctx context.Context, bucket, path string) (*models.UploadResult, error)
}

type uploadService struct {
	api UploadAPI
}

// NewUploadService constructs an UploadService.
func NewUploadService(a UploadAPI) UploadService {
	return &uploadService{api: a}
}

// UploadFile validates size client-side, reads the file, and uploads it
// under its base name.
func (s *uploadService) UploadFile(ctx context.Context, bucket, path string) (*models.UploadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxUploadSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", common.ErrValidation, MaxUploadSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return s.api.Upload(ctx, bucket, filepath.Base(path), content)
}
