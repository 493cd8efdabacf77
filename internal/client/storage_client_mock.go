package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// MockStorageClient implements StorageClient for testing without AWS credentials
type MockStorageClient struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	GenerateCertificateKeyFunc func(participantID uuid.UUID) string
	ArchiveCertificateFunc     func(ctx context.Context, key string, pdf io.Reader) (string, error)
	GetFileURLFunc             func(key string) string
}

// NewMockStorageClient creates a new mock storage client for testing
func NewMockStorageClient() *MockStorageClient {
	return &MockStorageClient{
		Bucket: "test-bucket",
		Region: "us-east-1",
	}
}

func (m *MockStorageClient) GenerateCertificateKey(participantID uuid.UUID) string {
	if m.GenerateCertificateKeyFunc != nil {
		return m.GenerateCertificateKeyFunc(participantID)
	}
	now := time.Now()
	return fmt.Sprintf("certificados/%s/%s/%s_%d.pdf",
		now.Format("2006"), now.Format("01"), participantID, now.Unix())
}

func (m *MockStorageClient) ArchiveCertificate(ctx context.Context, key string, pdf io.Reader) (string, error) {
	if m.ArchiveCertificateFunc != nil {
		return m.ArchiveCertificateFunc(ctx, key, pdf)
	}
	return m.GetFileURL(key), nil
}

func (m *MockStorageClient) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockStorageClient implements StorageClient
var _ StorageClient = (*MockStorageClient)(nil)
