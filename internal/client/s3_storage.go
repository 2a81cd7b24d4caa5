package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "taskboard-api/internal/config"
)

const s3KeyPrefix = "uploads/"

// S3Storage stores uploads in an S3 bucket or an S3-compatible endpoint such as MinIO
type S3Storage struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewS3Storage creates an S3Storage. When an endpoint is set, static credentials and path-style addressing are used.
func NewS3Storage(ctx context.Context, cfg *appConfig.S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for a custom S3 endpoint")
		}
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, name string, r io.Reader, contentType string) (string, int64, error) {
	key := s3KeyPrefix + name
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	// A seekable body lets the SDK set the content length and hash the payload up front
	var counter *countingReader
	if rs, ok := r.(io.ReadSeeker); ok {
		size, err := rs.Seek(0, io.SeekEnd)
		if err != nil {
			return "", 0, fmt.Errorf("failed to size upload: %w", err)
		}
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return "", 0, fmt.Errorf("failed to rewind upload: %w", err)
		}
		input.Body = rs
		input.ContentLength = aws.Int64(size)
	} else {
		counter = &countingReader{r: r}
		input.Body = counter
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", 0, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	size := aws.ToInt64(input.ContentLength)
	if counter != nil {
		size = counter.n
	}
	return s.fileURL(key), size, nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	name, ok := nameFromURL(url, s.fileURL(s3KeyPrefix))
	if !ok {
		return fmt.Errorf("url %q does not belong to bucket %s", url, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3KeyPrefix + name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (s *S3Storage) List(ctx context.Context) ([]StoredFile, error) {
	files := make([]StoredFile, 0)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s3KeyPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects: %w", err)
		}
		for _, obj := range page.Contents {
			file := StoredFile{URL: s.fileURL(aws.ToString(obj.Key))}
			if obj.LastModified != nil {
				file.ModTime = *obj.LastModified
			}
			files = append(files, file)
		}
	}
	return files, nil
}

// fileURL returns the public URL of key: endpoint/bucket/key for custom endpoints, the AWS virtual-host URL otherwise
func (s *S3Storage) fileURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
