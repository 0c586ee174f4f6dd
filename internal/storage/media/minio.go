// Package media stores uploaded report/post attachments in an S3-compatible
// bucket. Object names are timestamp-prefixed to avoid collisions.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Store struct {
	client     *minio.Client
	bucket     string
	publicBase string
	logger     *slog.Logger
}

func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Upload.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Upload.AccessKey, cfg.Upload.SecretKey, ""),
		Secure: cfg.Upload.UseSSL,
	})
	if err != nil {
		return nil, e.Wrap("media.NewStore", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Upload.Bucket)
	if err != nil {
		return nil, e.Wrap("media.NewStore.BucketExists", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Upload.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, e.Wrap("media.NewStore.MakeBucket", err)
		}
		logger.Info("media bucket created", slog.String("bucket", cfg.Upload.Bucket))
	}

	return &Store{
		client:     client,
		bucket:     cfg.Upload.Bucket,
		publicBase: strings.TrimRight(cfg.Upload.PublicBase, "/"),
		logger:     logger,
	}, nil
}

// Put uploads one attachment and returns its public URL.
func (s *Store) Put(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	const op = "media.Store.Put"

	object := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(filename))

	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("object upload failed", slog.String("op", op), slog.Any("error", err), slog.String("object", object))
		return "", e.Wrap(op, err)
	}

	return s.publicBase + "/" + object, nil
}

func sanitize(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" {
		name = "upload"
	}
	return name
}
