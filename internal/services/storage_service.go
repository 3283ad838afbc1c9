// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/apperrors"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/config"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// StorageService stores uploaded images on the local upload directory,
// or on S3 when AWS credentials are configured.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	svc := &StorageService{config: cfg}

	if cfg.AWS.AccessKeyID != "" && cfg.AWS.S3Bucket != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.AWS.Region),
			Credentials: credentials.NewStaticCredentials(
				cfg.AWS.AccessKeyID,
				cfg.AWS.SecretAccessKey,
				"",
			),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		svc.s3Client = s3.New(sess)
		return svc, nil
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return svc, nil
}

// SaveImage validates and stores a single uploaded image, returning its
// relative URL. Validation failures are typed so nothing is written for
// a rejected file.
func (s *StorageService) SaveImage(header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > s.config.Upload.MaxSizeBytes {
		return nil, apperrors.NewBadRequest(apperrors.CodeUploadFailed,
			fmt.Sprintf("File exceeds the %d MiB size limit", s.config.Upload.MaxSizeBytes>>20), nil)
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, apperrors.NewBadRequest(apperrors.CodeInvalidFileType,
			"Only JPEG, PNG, and WebP images are allowed", nil)
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewBadRequest(apperrors.CodeUploadFailed, "Failed to read uploaded file", nil)
	}
	defer file.Close()

	filename := s.generateFilename(header.Filename)

	if s.s3Client != nil {
		return s.saveToS3(file, filename, contentType)
	}
	return s.saveToDisk(file, filename)
}

func (s *StorageService) saveToDisk(file multipart.File, filename string) (*UploadResult, error) {
	dst, err := os.Create(filepath.Join(s.config.Upload.Dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	return &UploadResult{
		URL:      "/uploads/" + filename,
		Filename: filename,
	}, nil
}

func (s *StorageService) saveToS3(file multipart.File, filename, contentType string) (*UploadResult, error) {
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	key := "uploads/" + filename
	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.config.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key),
		Filename: filename,
	}, nil
}

func (s *StorageService) DeleteImage(filename string) error {
	if s.s3Client != nil {
		_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
			Bucket: aws.String(s.config.AWS.S3Bucket),
			Key:    aws.String("uploads/" + filename),
		})
		return err
	}
	return os.Remove(filepath.Join(s.config.Upload.Dir, filename))
}

// Collision-resistant name: timestamp plus random suffix plus the
// original extension.
func (s *StorageService) generateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
