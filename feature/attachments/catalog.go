package attachments

import "moderation-diff/core/reconcile"

// Kind is the entity kind reported for attachments.
const Kind = "attachment"

var catalog = reconcile.NewCatalog(Kind,
	func(a Attachment) string { return a.AttachmentContentID },
	reconcile.Ignored("attachment_content_id", func(a Attachment) reconcile.Value { return reconcile.String(a.AttachmentContentID) }),
	reconcile.Field("filename", func(a Attachment) reconcile.Value { return reconcile.String(a.Filename) }),
	reconcile.Field("sha1", func(a Attachment) reconcile.Value { return reconcile.String(a.Sha1) }),
	reconcile.Field("attachment_type", func(a Attachment) reconcile.Value { return reconcile.String(a.AttachmentType) }),
	reconcile.Field("size", func(a Attachment) reconcile.Value { return reconcile.Int(a.Size) }),
	reconcile.Field("created_by", func(a Attachment) reconcile.Value { return reconcile.String(a.CreatedBy) }),
	reconcile.Field("created_team", func(a Attachment) reconcile.Value { return reconcile.String(a.CreatedTeam) }),
	reconcile.Field("created_comment", func(a Attachment) reconcile.Value { return reconcile.String(a.CreatedComment) }),
	reconcile.Field("created_on", func(a Attachment) reconcile.Value { return reconcile.String(a.CreatedOn) }),
	reconcile.Field("checked_by", func(a Attachment) reconcile.Value { return reconcile.String(a.CheckedBy) }),
	reconcile.Field("checked_team", func(a Attachment) reconcile.Value { return reconcile.String(a.CheckedTeam) }),
	reconcile.Field("checked_comment", func(a Attachment) reconcile.Value { return reconcile.String(a.CheckedComment) }),
	reconcile.Field("checked_on", func(a Attachment) reconcile.Value { return reconcile.String(a.CheckedOn) }),
	reconcile.Field("check_status", func(a Attachment) reconcile.Value { return reconcile.String(a.CheckStatus) }),
	reconcile.Ignored("upload_history", func(a Attachment) reconcile.Value { return reconcile.Strings(a.UploadHistory) }),
)

// Catalog returns the field catalog for attachments.
// The catalog is immutable and shared.
func Catalog() *reconcile.Catalog[Attachment] {
	return catalog
}
