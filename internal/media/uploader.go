// Package media is the adapter in front of the image host. The rest of
// the system only ever stores the returned URL; the public id is handed
// back to the caller but not persisted.
package media

import (
	"context"
	"errors"
	"io"

	"lankastay-backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	preset string
	folder string
}

func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{
		cld:    cld,
		preset: cfg.CloudinaryUploadPreset,
		folder: cfg.CloudinaryFolder,
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		UploadPreset:     u.preset,
		Folder:           u.folder,
		PublicID:         uuid.NewString(),
		FilenameOverride: filename,
	})
	if err != nil {
		return nil, err
	}
	// The SDK reports API rejections in the body, not as an error.
	if resp.Error.Message != "" {
		return nil, errors.New(resp.Error.Message)
	}
	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}
