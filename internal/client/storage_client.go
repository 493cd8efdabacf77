package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appConfig "jornada-registro-api/internal/config"
)

// StorageClient defines the interface for archiving generated certificates
type StorageClient interface {
	GenerateCertificateKey(participantID uuid.UUID) string
	ArchiveCertificate(ctx context.Context, key string, pdf io.Reader) (string, error)
	GetFileURL(key string) string
}

// S3StorageClient wraps the AWS S3 client and implements StorageClient
type S3StorageClient struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string // set when targeting a local MinIO
}

// NewS3StorageClient creates a new S3-backed storage client
func NewS3StorageClient(cfg *appConfig.S3Config) (*S3StorageClient, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	// A custom endpoint means MinIO, which needs explicit credentials and
	// path-style addressing
	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}

		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// Use AWS SDK default credential chain (IAM role on EC2, ~/.aws/credentials locally)
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &S3StorageClient{
		client:   s3Client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

// GenerateCertificateKey builds the archive key for a participant's certificate.
// Format: certificados/{year}/{month}/{participantId}_{timestamp}.pdf
func (c *S3StorageClient) GenerateCertificateKey(participantID uuid.UUID) string {
	now := time.Now()
	return fmt.Sprintf("certificados/%s/%s/%s_%d.pdf",
		now.Format("2006"), now.Format("01"), participantID, now.Unix())
}

// ArchiveCertificate uploads a rendered certificate PDF to the bucket
func (c *S3StorageClient) ArchiveCertificate(ctx context.Context, key string, pdf io.Reader) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        pdf,
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload certificate to S3: %w", err)
	}
	return c.GetFileURL(key), nil
}

// GetFileURL returns the URL for an archived certificate
func (c *S3StorageClient) GetFileURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// NoOpStorageClient is used when no bucket is configured; certificates are
// still served over HTTP, they just are not archived
type NoOpStorageClient struct{}

func NewNoOpStorageClient() StorageClient {
	return &NoOpStorageClient{}
}

func (c *NoOpStorageClient) GenerateCertificateKey(participantID uuid.UUID) string {
	return ""
}

func (c *NoOpStorageClient) ArchiveCertificate(ctx context.Context, key string, pdf io.Reader) (string, error) {
	return "", nil
}

func (c *NoOpStorageClient) GetFileURL(key string) string {
	return ""
}
