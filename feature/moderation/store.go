package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"moderation-diff/core/reconcile"
	"moderation-diff/core/storage"

	"github.com/minio/minio-go/v7"
)

// SnapshotStore reads request snapshots from and archives reports to object storage.
type SnapshotStore struct {
	client storage.Client
	bucket string
	cfg    Config
}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore(client storage.Client, bucket string, cfg Config) *SnapshotStore {
	return &SnapshotStore{client: client, bucket: bucket, cfg: cfg}
}

// SnapshotKey returns the object name of the snapshot for a request.
func (s *SnapshotStore) SnapshotKey(id string) string {
	return path.Join(s.cfg.SnapshotPrefix, id+".json")
}

// ReportKey returns the object name of the archived report for a request.
func (s *SnapshotStore) ReportKey(id string) string {
	return path.Join(s.cfg.ReportPrefix, id+".json")
}

// Load reads the snapshot of a request.
func (s *SnapshotStore) Load(ctx context.Context, id string) (*Snapshot, error) {
	if err := ValidateRequestID(id); err != nil {
		return nil, err
	}

	key := s.SnapshotKey(id)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.loadError(id, key, err)
	}
	defer obj.Close()

	// Minio reports a missing object on first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.loadError(id, key, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, key, err)
	}
	if snap.RequestID == "" {
		snap.RequestID = id
	}
	return &snap, nil
}

func (s *SnapshotStore) loadError(id, key string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	return fmt.Errorf("failed to read snapshot %s: %w", key, err)
}

// Save writes the snapshot of a request.
func (s *SnapshotStore) Save(ctx context.Context, snap *Snapshot) (string, error) {
	if err := ValidateRequestID(snap.RequestID); err != nil {
		return "", err
	}
	key := s.SnapshotKey(snap.RequestID)
	return key, s.putJSON(ctx, key, snap)
}

// ArchiveReport writes a reconciliation result for a request and returns its object name.
func (s *SnapshotStore) ArchiveReport(ctx context.Context, id string, result *reconcile.Result) (string, error) {
	if err := ValidateRequestID(id); err != nil {
		return "", err
	}
	key := s.ReportKey(id)
	return key, s.putJSON(ctx, key, result)
}

func (s *SnapshotStore) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// ValidateRequestID rejects ids that are empty or would escape the object prefix.
func ValidateRequestID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidRequestID, id)
	}
	return nil
}
