package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"eduflow_backend/internal/config"
	"eduflow_backend/internal/util"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const maxImageSize = 5 << 20 // 5 MiB

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// StorageProvider abstracts where uploaded images land.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, filename))
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	return "/uploads/" + filename
}

type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	return "/" + p.Config.MinioBucket + "/" + filename
}

// StorageService stores avatar and thumbnail images behind a provider
// selected by configuration. Local disk is the fallback.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	if cfg.Storage.Type == "minio" {
		if p, err := NewMinioStorageProvider(&cfg.Storage); err == nil {
			provider = p
		}
	}
	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}
	return &StorageService{Provider: provider}
}

// UploadAvatar stores a user's avatar image. It returns the public URL and
// the object name, which the caller needs to Remove the image again if the
// enclosing operation fails after the upload.
func (s *StorageService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, string, error) {
	return s.uploadImage(ctx, fmt.Sprintf("avatars/%d", userID), file)
}

// UploadThumbnail stores a course thumbnail image. Return values as in
// UploadAvatar.
func (s *StorageService) UploadThumbnail(ctx context.Context, courseID uint, file *multipart.FileHeader) (string, string, error) {
	return s.uploadImage(ctx, fmt.Sprintf("thumbnails/%d", courseID), file)
}

// Remove deletes a previously uploaded object.
func (s *StorageService) Remove(ctx context.Context, object string) error {
	return s.Provider.Delete(ctx, object)
}

func (s *StorageService) uploadImage(ctx context.Context, prefix string, file *multipart.FileHeader) (string, string, error) {
	if file.Size > maxImageSize {
		return "", "", util.InvalidArgument("Image must be smaller than 5MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", "", util.InvalidArgument("Unsupported image type")
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	url, err := s.Provider.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return "", "", err
	}
	return url, filename, nil
}
