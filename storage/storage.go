// Package storage abstracts where uploaded images live: an S3 bucket when one
// is configured, the local uploads directory otherwise. Either way the
// handler receives back a public URL string to persist on the row.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sarelalush/Orel-site/config"
)

type Uploader interface {
	// Upload stores the file under the given folder and returns its public URL.
	Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
	// Delete removes a previously uploaded object by its public URL.
	// Best-effort: callers ignore the error when compensating.
	Delete(ctx context.Context, publicURL string) error
}

// New picks the S3 uploader when a bucket is configured, the disk uploader
// otherwise.
func New(ctx context.Context, cfg *config.Config) (Uploader, error) {
	if cfg.Storage.S3Bucket != "" {
		return newS3Uploader(ctx, cfg)
	}
	return &DiskUploader{
		Dir:        cfg.Storage.UploadDir,
		PublicPath: cfg.Storage.PublicPath,
	}, nil
}

func objectName(folder, original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s/%d_%s%s", folder, time.Now().UnixNano(), base, ext)
}

// ---------------------------------------------------------------------------
// S3
// ---------------------------------------------------------------------------

type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func newS3Uploader(ctx context.Context, cfg *config.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.S3Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	baseURL := cfg.Storage.S3BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Storage.S3Bucket, cfg.Storage.S3Region)
	}
	return &S3Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Storage.S3Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := objectName(folder, file.Filename)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return u.baseURL + "/" + key, nil
}

func (u *S3Uploader) Delete(ctx context.Context, publicURL string) error {
	key := strings.TrimPrefix(publicURL, u.baseURL+"/")
	if key == publicURL || key == "" {
		return nil // not one of ours
	}
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	return err
}

// ---------------------------------------------------------------------------
// Local disk
// ---------------------------------------------------------------------------

type DiskUploader struct {
	Dir        string
	PublicPath string
}

func (u *DiskUploader) Upload(_ context.Context, folder string, file *multipart.FileHeader) (string, error) {
	name := objectName(folder, file.Filename)
	savePath := filepath.Join(u.Dir, name)
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return u.PublicPath + "/" + name, nil
}

func (u *DiskUploader) Delete(_ context.Context, publicURL string) error {
	rel := strings.TrimPrefix(publicURL, u.PublicPath+"/")
	if rel == publicURL || rel == "" {
		return nil
	}
	return os.Remove(filepath.Join(u.Dir, rel))
}
