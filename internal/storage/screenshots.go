// Package storage persists trade screenshots in an S3-compatible
// bucket. The journal only stores the resulting URL on the trade row;
// the browser uploads directly against a presigned PUT.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradejournal/internal/config"
)

type ScreenshotStore struct {
	cfg      config.StorageConfig
	client   *s3.Client
	uploader *manager.Uploader
	presign  *s3.PresignClient
	logger   *zap.Logger
}

// PresignedUpload is handed to the browser: PUT the file to URL with
// ContentType, then save PublicURL as the trade's image_url.
type PresignedUpload struct {
	URL         string    `json:"url"`
	Key         string    `json:"key"`
	PublicURL   string    `json:"public_url"`
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// New returns nil when no bucket is configured; callers treat a nil
// store as feature-off.
func New(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*ScreenshotStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if strings.TrimSpace(cfg.Endpoint) != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return &ScreenshotStore{
		cfg:      cfg,
		client:   client,
		uploader: manager.NewUploader(client),
		presign:  s3.NewPresignClient(client),
		logger:   logger,
	}, nil
}

func (s *ScreenshotStore) Enabled() bool {
	return s != nil && s.client != nil
}

var extByContentType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

func objectKey(accountID, tradeID, contentType string) (string, error) {
	ext, ok := extByContentType[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	accountID = strings.TrimSpace(accountID)
	tradeID = strings.TrimSpace(tradeID)
	if accountID == "" || tradeID == "" {
		return "", fmt.Errorf("account and trade ids are required")
	}
	return fmt.Sprintf("journal/%s/%s/%s.%s", accountID, tradeID, uuid.NewString(), ext), nil
}

// PresignUpload returns a time-limited PUT URL for the browser.
func (s *ScreenshotStore) PresignUpload(ctx context.Context, accountID, tradeID, contentType string) (*PresignedUpload, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("screenshot storage disabled")
	}
	key, err := objectKey(accountID, tradeID, contentType)
	if err != nil {
		return nil, err
	}
	expiry := s.cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return nil, err
	}
	return &PresignedUpload{
		URL:         req.URL,
		Key:         key,
		PublicURL:   s.publicURL(key),
		ContentType: contentType,
		ExpiresAt:   time.Now().UTC().Add(expiry),
	}, nil
}

// Upload streams a screenshot through the server. Kept for clients that
// cannot do a cross-origin PUT; the presigned path is preferred.
func (s *ScreenshotStore) Upload(ctx context.Context, accountID, tradeID, contentType string, body io.Reader) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("screenshot storage disabled")
	}
	key, err := objectKey(accountID, tradeID, contentType)
	if err != nil {
		return "", err
	}
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", err
	}
	if s.logger != nil {
		s.logger.Info("screenshot stored", zap.String("key", key))
	}
	return s.publicURL(key), nil
}

func (s *ScreenshotStore) publicURL(key string) string {
	if base := strings.TrimRight(strings.TrimSpace(s.cfg.PublicBaseURL), "/"); base != "" {
		return base + "/" + key
	}
	if strings.TrimSpace(s.cfg.Endpoint) != "" {
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
