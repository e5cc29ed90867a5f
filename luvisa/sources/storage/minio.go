package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"luvisa/luvisa/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MaxAvatarBytes caps uploaded profile pictures at 50KB.
const MaxAvatarBytes = 50 * 1024

var ErrAvatarTooLarge = errors.New("avatar exceeds 50KB limit")

type AvatarStore struct {
	client *minio.Client
	bucket string
}

func NewAvatarStore(cfg config.Config) (*AvatarStore, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &AvatarStore{client: client, bucket: bucket}, nil
}

// Upload stores a user's avatar and returns its object key. One key per user,
// so re-uploads overwrite the previous picture.
func (s *AvatarStore) Upload(ctx context.Context, userID int, data []byte, contentType string) (string, error) {
	if len(data) > MaxAvatarBytes {
		return "", ErrAvatarTooLarge
	}
	key := fmt.Sprintf("avatars/%d", userID)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *AvatarStore) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, err
	}
	return data, nil
}
