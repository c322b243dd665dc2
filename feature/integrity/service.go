package integrity

import (
	"context"

	"moderation-diff/core/storage"
	"moderation-diff/feature/integrity/checks"
	"moderation-diff/feature/moderation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs health checks on the storage layout and the portal schema.
type Service struct {
	client   storage.Client
	bucket   string
	prefixes []string
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket string, cfg moderation.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		prefixes: []string{cfg.SnapshotPrefix, cfg.ReportPrefix},
		db:       db,
		logger:   logger,
	}
}

// CheckStructure returns the snapshot and report prefixes missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.prefixes)
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema reports missing portal columns.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
