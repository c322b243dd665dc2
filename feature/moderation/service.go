package moderation

import (
	"context"
	"fmt"

	"moderation-diff/core/reconcile"
	"moderation-diff/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Source names where request snapshots are loaded from.
type Source string

const (
	SourceDatabase Source = "database"
	SourceStorage  Source = "storage"
)

// Service loads moderation requests and reconciles their attachments.
type Service struct {
	repo   *Repository
	store  *SnapshotStore
	cache  *SnapshotCache
	logger *zap.Logger
}

// NewService creates a new moderation service. Requests are read from the
// database when db is set, otherwise from snapshots in object storage.
func NewService(db *gorm.DB, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	s := &Service{
		store:  NewSnapshotStore(client, bucket, cfg),
		cache:  NewSnapshotCache(cfg.CacheTTL()),
		logger: logger,
	}
	if db != nil {
		s.repo = NewRepository(db)
	}
	return s
}

// Source reports where the service reads requests from.
func (s *Service) Source() Source {
	if s.repo != nil {
		return SourceDatabase
	}
	return SourceStorage
}

// Store returns the snapshot store.
func (s *Service) Store() *SnapshotStore {
	return s.store
}

// Load returns the snapshot of a moderation request.
func (s *Service) Load(ctx context.Context, id string) (*Snapshot, error) {
	if err := ValidateRequestID(id); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return s.cache.GetOrLoad(ctx, id, s.store.Load)
	}

	req, err := s.repo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	baseline, err := s.repo.ListBaseline(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}
	return SnapshotOf(req, baseline), nil
}

// Compare reconciles the attachments of a moderation request in the mode
// derived from its state.
func (s *Service) Compare(ctx context.Context, id string) (*reconcile.Result, error) {
	snap, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := snap.Compare(snap.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile request %s: %w", id, err)
	}

	s.logger.Debug("Reconciled moderation request",
		zap.String("request", id),
		zap.String("source", string(s.Source())),
		zap.Stringer("mode", result.Mode),
		zap.Int("added", len(result.Added)),
		zap.Int("deleted", len(result.Deleted)),
		zap.Int("changed", len(result.Changed)),
	)
	for _, w := range result.Warnings {
		s.logger.Warn("Attachment field unavailable",
			zap.String("request", id),
			zap.String("attachment", w.ID),
			zap.String("field", w.Field),
			zap.String("slot", string(w.Slot)),
		)
	}
	return result, nil
}

// Archive writes a result to object storage and returns the object name.
func (s *Service) Archive(ctx context.Context, id string, result *reconcile.Result) (string, error) {
	return s.store.ArchiveReport(ctx, id, result)
}

// Invalidate drops any cached snapshot of a request.
func (s *Service) Invalidate(id string) {
	s.cache.Invalidate(id)
}
