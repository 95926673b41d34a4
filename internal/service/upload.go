package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dormdesk/dormdesk/pkg/idx"
)

// presignTTL bounds how long an upload URL stays valid.
const presignTTL = 15 * time.Minute

// allowedUploadTypes limits presigned uploads to image evidence.
var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// S3Config locates the object store. Works against AWS proper or any
// S3-compatible endpoint (MinIO in the compose setup).
type S3Config struct {
	Region    string
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
}

// UploadService hands out presigned PUT URLs for payment evidence and repair
// photos. The API never proxies file bytes.
type UploadService struct {
	cfg S3Config

	// newPresignClient is swappable so tests can avoid real AWS config
	// resolution.
	newPresignClient func(ctx context.Context) (presignAPI, error)
}

// presignAPI mirrors the subset of s3.PresignClient we call.
type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (presignedURL string, err error)
}

// NewUploadService builds an UploadService over the given S3 endpoint.
func NewUploadService(cfg S3Config) *UploadService {
	s := &UploadService{cfg: cfg}
	s.newPresignClient = s.sdkPresignClient
	return s
}

// PresignedUpload is the URL/key pair returned to the client. The client PUTs
// the bytes straight to the object store and stores Key's public URL on the
// bill or repair.
type PresignedUpload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PresignPut returns a presigned PUT URL for one object. Keys are
// date-partitioned under the uploading user.
func (s *UploadService) PresignPut(ctx context.Context, userID, contentType string) (PresignedUpload, error) {
	if !allowedUploadTypes[contentType] {
		return PresignedUpload{}, ErrUnsupportedUpload
	}

	client, err := s.newPresignClient(ctx)
	if err != nil {
		return PresignedUpload{}, err
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("uploads/%s/%04d/%02d/%s", userID, now.Year(), now.Month(), idx.New())

	url, err := client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return PresignedUpload{}, err
	}

	return PresignedUpload{Key: key, URL: url}, nil
}

// sdkPresignClient wires the real AWS SDK presign client.
func (s *UploadService) sdkPresignClient(ctx context.Context) (presignAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey, s.cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return sdkPresigner{s3.NewPresignClient(client)}, nil
}

// sdkPresigner adapts *s3.PresignClient to presignAPI.
type sdkPresigner struct {
	client *s3.PresignClient
}

func (p sdkPresigner) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.PresignOptions)) (string, error) {
	req, err := p.client.PresignPutObject(ctx, in, opts...)
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
