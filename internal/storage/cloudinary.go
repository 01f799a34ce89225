package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements Storage over the Cloudinary API.
// Paths map to Cloudinary public IDs under the configured folder.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage creates a new Cloudinary storage instance
func NewCloudinaryStorage(cfg Config) (*CloudinaryStorage, error) {
	if cfg.CloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary_url is required for cloudinary storage")
	}

	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	folder := cfg.CloudinaryFolder
	if folder == "" {
		folder = "petbnb"
	}

	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStorage) publicID(path string) string {
	return s.folder + "/" + path
}

// Save uploads a file to Cloudinary
func (s *CloudinaryStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	overwrite := true
	_, err := s.cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		PublicID:  s.publicID(path),
		Overwrite: &overwrite,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	return nil
}

// Get fetches the asset over HTTP, Cloudinary has no direct download API
func (s *CloudinaryStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	url, err := s.GetURL(ctx, path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from cloudinary: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cloudinary fetch returned status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// Delete removes an asset from Cloudinary
func (s *CloudinaryStorage) Delete(ctx context.Context, path string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: s.publicID(path),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	return nil
}

// Exists checks whether the asset is known to Cloudinary
func (s *CloudinaryStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.cld.Admin.Asset(ctx, admin.AssetParams{
		PublicID: s.publicID(path),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

// GetURL returns the delivery URL of the asset
func (s *CloudinaryStorage) GetURL(ctx context.Context, path string) (string, error) {
	img, err := s.cld.Image(s.publicID(path))
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary URL: %w", err)
	}
	return img.String()
}

// GetSignedURL returns the delivery URL, Cloudinary assets here are public
func (s *CloudinaryStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.GetURL(ctx, path)
}
