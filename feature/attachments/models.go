package attachments

// Attachment is a file attached to a document.
type Attachment struct {
	AttachmentContentID string   `gorm:"column:attachment_content_id;primaryKey;size:64" json:"attachment_content_id" yaml:"attachment_content_id"`
	DocumentID          string   `gorm:"column:document_id;index;size:64" json:"document_id,omitempty" yaml:"document_id,omitempty"`
	Filename            string   `gorm:"column:filename" json:"filename" yaml:"filename"`
	Sha1                string   `gorm:"column:sha1;size:40" json:"sha1,omitempty" yaml:"sha1,omitempty"`
	AttachmentType      string   `gorm:"column:attachment_type;size:32" json:"attachment_type,omitempty" yaml:"attachment_type,omitempty"`
	Size                int64    `gorm:"column:size" json:"size,omitempty" yaml:"size,omitempty"`
	CreatedBy           string   `gorm:"column:created_by" json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedTeam         string   `gorm:"column:created_team" json:"created_team,omitempty" yaml:"created_team,omitempty"`
	CreatedComment      string   `gorm:"column:created_comment" json:"created_comment,omitempty" yaml:"created_comment,omitempty"`
	CreatedOn           string   `gorm:"column:created_on;size:32" json:"created_on,omitempty" yaml:"created_on,omitempty"`
	CheckedBy           string   `gorm:"column:checked_by" json:"checked_by,omitempty" yaml:"checked_by,omitempty"`
	CheckedTeam         string   `gorm:"column:checked_team" json:"checked_team,omitempty" yaml:"checked_team,omitempty"`
	CheckedComment      string   `gorm:"column:checked_comment" json:"checked_comment,omitempty" yaml:"checked_comment,omitempty"`
	CheckedOn           string   `gorm:"column:checked_on;size:32" json:"checked_on,omitempty" yaml:"checked_on,omitempty"`
	CheckStatus         string   `gorm:"column:check_status;size:32" json:"check_status,omitempty" yaml:"check_status,omitempty"`
	UploadHistory       []string `gorm:"column:upload_history;serializer:json" json:"upload_history,omitempty" yaml:"upload_history,omitempty"`
}

// TableName overrides the table name used by Attachment.
func (Attachment) TableName() string {
	return "attachments"
}

// Columns lists the table columns the moderation feature reads.
var Columns = []string{
	"attachment_content_id",
	"document_id",
	"filename",
	"sha1",
	"attachment_type",
	"size",
	"created_by",
	"created_team",
	"created_comment",
	"created_on",
	"checked_by",
	"checked_team",
	"checked_comment",
	"checked_on",
	"check_status",
	"upload_history",
}
