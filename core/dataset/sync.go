package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"itac-api/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Artifact maps one object in the bucket to its local destination.
type Artifact struct {
	Object string
	Path   string
}

// Sync downloads every artifact from the bucket. It fails on the first
// unavailable object; a partial dataset is worse than a stale one.
func Sync(ctx context.Context, client storage.Client, bucket string, artifacts []Artifact, logger *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, a := range artifacts {
		logger.Info("Downloading artifact",
			zap.String("object", a.Object),
			zap.String("path", a.Path),
		)
		if err := download(ctx, client, bucket, a); err != nil {
			return fmt.Errorf("failed to sync %s: %w", a.Object, err)
		}
	}
	return nil
}

func download(ctx context.Context, client storage.Client, bucket string, a Artifact) error {
	obj, err := client.GetObject(ctx, bucket, a.Object, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.Path), filepath.Base(a.Path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, obj); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), a.Path)
}
