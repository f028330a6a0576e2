package backup

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const keyPrefix = "backups/"

// Uploader pushes backup files to an S3-compatible bucket (R2 works
// with a custom endpoint). Used for offsite copies of exported data.
type Uploader struct {
	client *s3.Client
	bucket string
}

type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func NewUploader(ctx context.Context, opts Options) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)),
		awsconfig.WithRegion(opts.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket credentials: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return &Uploader{client: client, bucket: opts.Bucket}, nil
}

// Upload stores one backup file under backups/<name>
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) error {
	key := keyPrefix + name
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload backup %s: %w", key, err)
	}
	log.Printf("[Backup] Uploaded %s (%d bytes)", key, len(data))
	return nil
}

type StoredBackup struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
}

// List returns stored backups, newest first
func (u *Uploader) List(ctx context.Context) ([]StoredBackup, error) {
	result, err := u.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(u.bucket),
		Prefix: aws.String(keyPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	backups := make([]StoredBackup, 0, len(result.Contents))
	for _, obj := range result.Contents {
		b := StoredBackup{Key: *obj.Key}
		if obj.Size != nil {
			b.Size = *obj.Size
		}
		if obj.LastModified != nil {
			b.LastModified = obj.LastModified.UTC().Format("2006-01-02 15:04:05")
		}
		backups = append(backups, b)
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].LastModified > backups[j].LastModified
	})
	return backups, nil
}
