package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"notebin/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage stores bytes and returns a retrievable reference. Callers must
// treat the reference as opaque.
type Storage interface {
	Store(ctx context.Context, r io.Reader, suggestedName string) (string, error)
}

// uniqueName prefixes the sanitized original filename with a fresh uuid so
// references never collide, whatever the client names its files.
func uniqueName(suggestedName string) string {
	base := filepath.Base(suggestedName)
	base = strings.ReplaceAll(base, " ", "_")
	return strings.ReplaceAll(uuid.New().String(), "-", "") + "_" + base
}

// LocalStorage writes uploads to a directory on disk and returns a public
// URL path under the static file route.
type LocalStorage struct {
	Dir       string
	PublicURL string
}

func NewLocalStorage(dir, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{Dir: dir, PublicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (s *LocalStorage) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	name := uniqueName(suggestedName)

	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.PublicURL + "/" + name, nil
}

// MinioStorage puts uploads in an object bucket. The reference is the
// object's path-style URL.
type MinioStorage struct {
	client *minio.Client
	bucket string
	secure bool
	host   string
}

func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStorage{
		client: client,
		bucket: cfg.Bucket,
		secure: cfg.UseSSL,
		host:   cfg.Endpoint,
	}, nil
}

func (s *MinioStorage) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	name := uniqueName(suggestedName)
	contentType := mimetype.Detect(data).String()

	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store object: %w", err)
	}

	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.host, s.bucket, name), nil
}

// NewStorage builds the backend selected by configuration.
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "minio":
		return NewMinioStorage(cfg)
	default:
		return NewLocalStorage(cfg.UploadDir, cfg.PublicURL)
	}
}
