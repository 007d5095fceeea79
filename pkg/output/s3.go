package output

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-weekend-raytracer/pkg/config"
)

// S3Uploader stores rendered images in an S3-compatible bucket
type S3Uploader struct {
	client *s3.S3
	bucket string
	prefix string
}

// NewS3Uploader creates an uploader from the storage settings.
// Without static keys the default AWS credential chain is used.
func NewS3Uploader(cfg config.S3Config) (*S3Uploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}

	return &S3Uploader{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Upload puts data under key and returns the bucket-relative key
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// UploadRender encodes and uploads a render under a timestamped key
func (u *S3Uploader) UploadRender(ctx context.Context, scene, ext string, buf []byte, width, height int) (string, error) {
	var data bytes.Buffer
	if err := Encode(&data, ext, buf, width, height); err != nil {
		return "", err
	}
	key := ObjectKey(u.prefix, scene, ext, time.Now())
	return u.Upload(ctx, key, data.Bytes(), ContentType(ext))
}

// ObjectKey builds "<prefix>/<scene>-<UTC timestamp>.<ext>"
func ObjectKey(prefix, scene, ext string, at time.Time) string {
	name := fmt.Sprintf("%s-%s.%s", scene, at.UTC().Format("20060102-150405"), normalizeExt(ext))
	return path.Join(strings.Trim(prefix, "/"), name)
}
