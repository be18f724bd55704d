package blob

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/unicollab-io/unicollab/internal/config"
)

// Presigner hands out time-limited URLs for direct-to-bucket transfers. File
// bytes never pass through the API server.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

type S3Deps struct {
	Client  *s3.Client
	Presign *s3.PresignClient
	Bucket  string
	Expire  time.Duration
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	expire := 15 * time.Minute
	if cfg.S3.PresignExpireSec > 0 {
		expire = time.Duration(cfg.S3.PresignExpireSec) * time.Second
	}

	return &S3Deps{
		Client:  client,
		Presign: s3.NewPresignClient(client),
		Bucket:  cfg.S3.Bucket,
		Expire:  expire,
	}, nil
}

func (d *S3Deps) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := d.Presign.PresignPutObject(ctx, in, s3.WithPresignExpires(d.Expire))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (d *S3Deps) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := d.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(d.Expire))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
