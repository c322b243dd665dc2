package moderation

import (
	"strings"

	"moderation-diff/core/reconcile"
	"moderation-diff/feature/attachments"
)

// State is the lifecycle state of a moderation request.
type State string

const (
	StatePending    State = "pending"
	StateInProgress State = "in_progress"
	StateApproved   State = "approved"
	StateRejected   State = "rejected"
)

// Closed reports whether the request has been decided.
func (s State) Closed() bool {
	switch State(strings.ToLower(string(s))) {
	case StateApproved, StateRejected:
		return true
	default:
		return false
	}
}

// Mode returns the reconciliation mode for a request in state s.
func (s State) Mode() reconcile.Mode {
	if s.Closed() {
		return reconcile.ModeClosed
	}
	return reconcile.ModeOpen
}

// Request is a proposed set of attachment changes to a document.
type Request struct {
	ID             string                   `gorm:"column:id;primaryKey;size:64" json:"id"`
	DocumentID     string                   `gorm:"column:document_id;index;size:64" json:"document_id"`
	DocumentType   string                   `gorm:"column:document_type;size:32" json:"document_type"`
	RequestingUser string                   `gorm:"column:requesting_user" json:"requesting_user"`
	State          State                    `gorm:"column:state;size:16" json:"state"`
	Additions      []attachments.Attachment `gorm:"column:additions;serializer:json" json:"additions"`
	Deletions      []attachments.Attachment `gorm:"column:deletions;serializer:json" json:"deletions"`
}

// TableName overrides the table name used by Request.
func (Request) TableName() string {
	return "moderation_requests"
}

// Mode returns the reconciliation mode for the request.
func (r Request) Mode() reconcile.Mode {
	return r.State.Mode()
}

// RequestColumns lists the moderation_requests columns the repository reads.
var RequestColumns = []string{
	"id",
	"document_id",
	"document_type",
	"requesting_user",
	"state",
	"additions",
	"deletions",
}
