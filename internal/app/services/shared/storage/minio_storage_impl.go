package storage

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	BaseURL     string
}

// NewMinioStorage wraps the minio driver as the image-hosting backend.
// A nil client is allowed and reported through Configured.
func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) contracts.Storage {
	scheme := "http"
	if driverConfig.Minio.UseSSL {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s:%s/%s",
		scheme,
		driverConfig.Minio.Host,
		driverConfig.Minio.Port,
		driverConfig.Minio.BucketName,
	)
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		BaseURL:     baseURL,
	}
}

func (m *minioStorage) Configured() bool {
	return m.MinioClient != nil
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (string, error) {
	if !m.Configured() {
		return "", exceptions.ErrStorageNotConfigured(nil)
	}

	objectName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return fmt.Sprintf("%s/%s", m.BaseURL, objectName), nil
}

func (m *minioStorage) OwnsURL(imageURL string) bool {
	return strings.HasPrefix(imageURL, m.BaseURL+"/")
}

func (m *minioStorage) RemoveByURL(ctx context.Context, imageURL string) error {
	if !m.Configured() {
		return exceptions.ErrStorageNotConfigured(nil)
	}
	if !m.OwnsURL(imageURL) {
		return nil
	}

	objectName := strings.TrimPrefix(imageURL, m.BaseURL+"/")
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, m.BucketName)
	}
	return nil
}
