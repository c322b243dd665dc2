package moderation_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"moderation-diff/core/database"
	"moderation-diff/feature/attachments"
	"moderation-diff/feature/moderation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func att(id, filename string, size int64) attachments.Attachment {
	return attachments.Attachment{
		AttachmentContentID: id,
		DocumentID:          "doc-1",
		Filename:            filename,
		Size:                size,
		AttachmentType:      "SOURCE",
	}
}

// setupDB returns an in-memory sqlite database seeded with one open and one
// closed request against document doc-1.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&attachments.Attachment{}, &moderation.Request{}))

	a := att("a", "a.txt", 1)
	b := att("b", "b.txt", 2)
	c := att("c", "c.txt", 3)
	require.NoError(t, db.Create(&[]attachments.Attachment{c, a, b}).Error)

	editedB := b
	editedB.Filename = "b-renamed.txt"
	d := att("d", "d.txt", 4)

	requests := []moderation.Request{
		{
			ID:             "req-open",
			DocumentID:     "doc-1",
			DocumentType:   "release",
			RequestingUser: "alice@example.com",
			State:          moderation.StatePending,
			Additions:      []attachments.Attachment{d, editedB},
			Deletions:      []attachments.Attachment{b, c},
		},
		{
			ID:             "req-closed",
			DocumentID:     "doc-1",
			DocumentType:   "release",
			RequestingUser: "alice@example.com",
			State:          moderation.StateApproved,
			Additions:      []attachments.Attachment{d},
			Deletions:      []attachments.Attachment{att("gone", "gone.txt", 9)},
		},
	}
	require.NoError(t, db.Create(&requests).Error)
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func snapshotBody(t *testing.T, snap *moderation.Snapshot) io.ReadCloser {
	t.Helper()
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	return io.NopCloser(bytes.NewReader(data))
}

func testConfig() moderation.Config {
	return moderation.Config{SnapshotPrefix: "snapshots", ReportPrefix: "reports", CacheTTLSeconds: 60}
}
