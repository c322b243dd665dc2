package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moderation-diff/core/database"
	"moderation-diff/feature/attachments"

	"gorm.io/gorm"
)

// Repository reads moderation requests and document attachments from the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindRequest loads a moderation request by id.
func (r *Repository) FindRequest(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load moderation request %s: %w", id, err)
	}
	return &req, nil
}

// ListBaseline returns the attachments currently linked to a document,
// ordered by content id.
func (r *Repository) ListBaseline(ctx context.Context, documentID string) ([]attachments.Attachment, error) {
	var items []attachments.Attachment
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("attachment_content_id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments of document %s: %w", documentID, err)
	}
	return items, nil
}

// TableColumns names a table and the columns read from it.
type TableColumns struct {
	Table   string
	Columns []string
}

// RequiredColumns lists the tables and columns the repository reads.
func RequiredColumns() []TableColumns {
	return []TableColumns{
		{Table: attachments.Attachment{}.TableName(), Columns: attachments.Columns},
		{Table: Request{}.TableName(), Columns: RequestColumns},
	}
}

// CheckSchema verifies that the attachment and request tables carry every
// column the repository reads.
func (r *Repository) CheckSchema() error {
	var problems []string
	for _, table := range RequiredColumns() {
		missing, err := database.MissingColumns(r.db, table.Table, table.Columns)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s missing %s", table.Table, strings.Join(missing, ", ")))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(problems, "; "))
	}
	return nil
}
