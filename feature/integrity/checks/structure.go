package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"moderation-diff/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// folderPath returns prefix as a folder key ending in a slash.
func folderPath(prefix string) string {
	if !strings.HasSuffix(prefix, "/") {
		return prefix + "/"
	}
	return prefix
}

// CheckStructure returns the prefixes that hold no object in the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, prefixes []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var missing []string
	for _, prefix := range prefixes {
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath(prefix),
			Recursive: false,
			MaxKeys:   1,
		}

		found, err := hasObjects(ctx, client, bucket, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
		}
		if !found {
			missing = append(missing, prefix)
		}
	}
	return missing, nil
}

// hasObjects reports whether the listing yields at least one object. The
// listing is cancelled on return so the producer stops after the first hit.
func hasObjects(ctx context.Context, client storage.Client, bucket string, opts minio.ListObjectsOptions) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	obj, ok := <-client.ListObjects(ctx, bucket, opts)
	if !ok {
		return false, nil
	}
	if obj.Err != nil {
		return false, obj.Err
	}
	return true, nil
}

// FixStructure creates an empty folder marker for each missing prefix.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, prefix := range missing {
		_, err := client.PutObject(ctx, bucket, folderPath(prefix), bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", prefix), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", prefix, err)
		}
		logger.Info("Created missing folder", zap.String("folder", prefix))
	}
	return nil
}
