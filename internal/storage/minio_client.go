package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"instituteCMS/internal/config"
	"instituteCMS/internal/models"
)

// MediaDelegate stores images on behalf of the API and hands back
// public URLs for them.
type MediaDelegate interface {
	Upload(ctx context.Context, namespace, payload string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

type MinIOClient struct {
	client     *minio.Client
	config     config.MinIO
	httpClient *http.Client
}

func NewMinIOClient(cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	return &MinIOClient{
		client:     client,
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
	}, nil
}

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

// EnsureBucket creates the media bucket if needed and makes its objects
// publicly readable, since the API only ever hands out plain URLs.
func (m *MinIOClient) EnsureBucket(ctx context.Context) error {
	bucket := m.config.BucketName

	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket %s: %w", bucket, err)
	}

	if !exists {
		err = m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.config.Region})
		if err != nil {
			return fmt.Errorf("error creating bucket %s: %w", bucket, err)
		}
	}

	if err := m.client.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket)); err != nil {
		return fmt.Errorf("error setting bucket policy: %w", err)
	}

	return nil
}

// Upload stores the image carried by payload under namespace and returns
// its public URL. Every failure wraps models.ErrUpstream.
func (m *MinIOClient) Upload(ctx context.Context, namespace, payload string) (string, error) {
	data, err := decodePayload(ctx, m.httpClient, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	img, err := prepareImage(data, m.config.MaxImageWidth)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}

	now := time.Now()
	objectName := namespace + "/" + models.NewID() + img.ext

	_, err = m.client.PutObject(ctx, m.config.BucketName, objectName,
		bytes.NewReader(img.data), int64(len(img.data)),
		minio.PutObjectOptions{
			ContentType: img.contentType,
			UserMetadata: map[string]string{
				"namespace":   namespace,
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("%w: error uploading to minio: %v", models.ErrUpstream, err)
	}

	return m.config.BaseURL() + "/" + objectName, nil
}

// Delete removes every object stored under publicID. The public id carries
// no extension, so objects are matched by prefix.
func (m *MinIOClient) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("empty public id")
	}

	objects := m.client.ListObjects(ctx, m.config.BucketName, minio.ListObjectsOptions{
		Prefix: publicID,
	})

	var errs []error
	for obj := range objects {
		if obj.Err != nil {
			errs = append(errs, obj.Err)
			continue
		}

		err := m.client.RemoveObject(ctx, m.config.BucketName, obj.Key,
			minio.RemoveObjectOptions{GovernanceBypass: true})
		if err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", obj.Key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: error deleting from minio: %w", models.ErrUpstream, errors.Join(errs...))
	}

	return nil
}
