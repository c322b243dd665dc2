package moderation

import (
	"moderation-diff/core/reconcile"
	"moderation-diff/feature/attachments"
)

// Comparison is a loaded set of collections that can be reconciled.
type Comparison interface {
	// RequestMode returns the mode recorded with the snapshot.
	RequestMode() reconcile.Mode
	// Compare reconciles the snapshot in the given mode.
	Compare(mode reconcile.Mode) (*reconcile.Result, error)
}

// Snapshot captures the attachment collections of one moderation request.
type Snapshot struct {
	RequestID  string                   `json:"request_id"`
	DocumentID string                   `json:"document_id,omitempty"`
	Mode       reconcile.Mode           `json:"mode"`
	Baseline   []attachments.Attachment `json:"baseline"`
	Additions  []attachments.Attachment `json:"additions"`
	Deletions  []attachments.Attachment `json:"deletions"`
}

// SnapshotOf builds the snapshot of a request against its document baseline.
func SnapshotOf(req *Request, baseline []attachments.Attachment) *Snapshot {
	return &Snapshot{
		RequestID:  req.ID,
		DocumentID: req.DocumentID,
		Mode:       req.Mode(),
		Baseline:   baseline,
		Additions:  req.Additions,
		Deletions:  req.Deletions,
	}
}

// RequestMode implements Comparison.
func (s *Snapshot) RequestMode() reconcile.Mode {
	return s.Mode
}

// Compare implements Comparison using the attachment catalog.
func (s *Snapshot) Compare(mode reconcile.Mode) (*reconcile.Result, error) {
	return reconcile.Reconcile(attachments.Catalog(), s.Baseline, s.Additions, s.Deletions, mode)
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Baseline = cloneAttachments(s.Baseline)
	cp.Additions = cloneAttachments(s.Additions)
	cp.Deletions = cloneAttachments(s.Deletions)
	return &cp
}

func cloneAttachments(items []attachments.Attachment) []attachments.Attachment {
	if items == nil {
		return nil
	}
	out := make([]attachments.Attachment, len(items))
	for i, a := range items {
		out[i] = a
		if a.UploadHistory != nil {
			out[i].UploadHistory = append([]string(nil), a.UploadHistory...)
		}
	}
	return out
}

// RecordSnapshot holds collections of an arbitrary entity kind described by
// field names rather than a Go type.
type RecordSnapshot struct {
	Kind      string
	Mode      reconcile.Mode
	Fields    []string
	Ignore    []string
	Baseline  []reconcile.Record
	Additions []reconcile.Record
	Deletions []reconcile.Record
}

// RequestMode implements Comparison.
func (s *RecordSnapshot) RequestMode() reconcile.Mode {
	return s.Mode
}

// Catalog returns the record catalog declared by the snapshot.
func (s *RecordSnapshot) Catalog() *reconcile.Catalog[reconcile.Record] {
	return reconcile.RecordCatalog(s.Kind, s.Fields, s.Ignore...)
}

// Compare implements Comparison using the declared record catalog.
func (s *RecordSnapshot) Compare(mode reconcile.Mode) (*reconcile.Result, error) {
	return reconcile.Reconcile(s.Catalog(), s.Baseline, s.Additions, s.Deletions, mode)
}
