// internal/services/storage_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/retail-backend/internal/config"
	"github.com/javajoker/retail-backend/internal/utils"
)

// FileStorage persists uploaded files and hands back the reference clients
// use to fetch them.
type FileStorage interface {
	Save(ctx context.Context, name, contentType string, body io.ReadSeeker, size int64) (string, error)
	Delete(ctx context.Context, ref string) error
}

type StorageService struct {
	backend FileStorage
	now     func() time.Time
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if !cfg.AWS.Enabled() {
		return NewStorageServiceWithBackend(NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)), nil
	}

	// Create AWS session
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

	return NewStorageServiceWithBackend(NewS3Storage(s3.New(sess), cfg.AWS)), nil
}

func NewStorageServiceWithBackend(backend FileStorage) *StorageService {
	return &StorageService{
		backend: backend,
		now:     time.Now,
	}
}

// SaveImages stores every file under its generated name and returns the
// references keyed by form field. If any file fails, the ones already written
// are removed and nothing is returned.
func (s *StorageService) SaveImages(ctx context.Context, files map[string]*multipart.FileHeader) (map[string]string, error) {
	saved := make(map[string]string, len(files))

	for _, field := range utils.ImageFields {
		header, ok := files[field]
		if !ok {
			continue
		}

		ref, err := s.saveFile(ctx, field, header)
		if err != nil {
			s.DeleteFiles(ctx, mapValues(saved))
			return nil, err
		}
		saved[field] = ref
	}

	return saved, nil
}

func (s *StorageService) saveFile(ctx context.Context, field string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer file.Close()

	name := utils.UploadFileName(field, header.Filename, s.now())
	ref, err := s.backend.Save(ctx, name, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", field, err)
	}
	return ref, nil
}

// DeleteFiles removes stored files best-effort; failures are only logged.
func (s *StorageService) DeleteFiles(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.backend.Delete(ctx, ref); err != nil {
			logrus.WithError(err).WithField("file", ref).Warn("Failed to delete stored file")
		}
	}
}

func mapValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// LocalStorage writes files into a directory that the router serves under
// publicPath.
type LocalStorage struct {
	dir        string
	publicPath string
}

func NewLocalStorage(dir, publicPath string) *LocalStorage {
	return &LocalStorage{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}
}

func (l *LocalStorage) Save(ctx context.Context, name, _ string, body io.ReadSeeker, _ int64) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(l.dir, filepath.Base(name)))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(l.publicPath, filepath.Base(name)), nil
}

func (l *LocalStorage) Delete(_ context.Context, ref string) error {
	if !strings.HasPrefix(ref, l.publicPath+"/") {
		return fmt.Errorf("%s is not a local upload", ref)
	}

	err := os.Remove(filepath.Join(l.dir, path.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// S3Storage uploads public-read objects to a bucket, optionally fronted by
// CloudFront.
type S3Storage struct {
	client s3iface.S3API
	cfg    config.AWSConfig
}

func NewS3Storage(client s3iface.S3API, cfg config.AWSConfig) *S3Storage {
	return &S3Storage{client: client, cfg: cfg}
}

func (s *S3Storage) Save(ctx context.Context, name, contentType string, body io.ReadSeeker, size int64) (string, error) {
	key := path.Join("products", name)

	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.S3Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.client.PutObjectWithContext(ctx, params); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.baseURL() + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(ref, s.baseURL()+"/")
	if key == ref {
		return fmt.Errorf("%s is not stored in bucket %s", ref, s.cfg.S3Bucket)
	}

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *S3Storage) baseURL() string {
	if s.cfg.CloudFrontURL != "" {
		return strings.TrimRight(s.cfg.CloudFrontURL, "/")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.cfg.S3Bucket, s.cfg.Region)
}
