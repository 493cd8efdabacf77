package client

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestS3StorageClient_GenerateCertificateKey(t *testing.T) {
	c := &S3StorageClient{bucket: "jornada-certificados", region: "us-east-1"}
	participantID := uuid.New()

	key := c.GenerateCertificateKey(participantID)

	now := time.Now()
	wantPrefix := fmt.Sprintf("certificados/%s/%s/%s_", now.Format("2006"), now.Format("01"), participantID)
	if !strings.HasPrefix(key, wantPrefix) {
		t.Errorf("unexpected key prefix: %s", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("expected a .pdf key, got %s", key)
	}
}

func TestS3StorageClient_GetFileURL(t *testing.T) {
	t.Run("AWS virtual-hosted URL", func(t *testing.T) {
		c := &S3StorageClient{bucket: "jornada-certificados", region: "us-east-1"}
		got := c.GetFileURL("certificados/2025/10/abc.pdf")
		want := "https://jornada-certificados.s3.us-east-1.amazonaws.com/certificados/2025/10/abc.pdf"
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("MinIO path-style URL", func(t *testing.T) {
		c := &S3StorageClient{bucket: "jornada-certificados", endpoint: "http://localhost:9000/"}
		got := c.GetFileURL("certificados/2025/10/abc.pdf")
		want := "http://localhost:9000/jornada-certificados/certificados/2025/10/abc.pdf"
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
}

func TestNoOpStorageClient(t *testing.T) {
	c := NewNoOpStorageClient()

	// An empty key signals callers to skip archiving entirely
	if key := c.GenerateCertificateKey(uuid.New()); key != "" {
		t.Errorf("expected an empty key, got %s", key)
	}
	if url, err := c.ArchiveCertificate(context.Background(), "any", strings.NewReader("pdf")); err != nil || url != "" {
		t.Errorf("expected a silent no-op, got %s %v", url, err)
	}
}
