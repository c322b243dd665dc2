package moderation_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"moderation-diff/core/reconcile"
	"moderation-diff/core/storage/mocks"
	"moderation-diff/feature/attachments"
	"moderation-diff/feature/moderation"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_Keys(t *testing.T) {
	store := moderation.NewSnapshotStore(new(mocks.Client), "bucket", testConfig())
	assert.Equal(t, "snapshots/r1.json", store.SnapshotKey("r1"))
	assert.Equal(t, "reports/r1.json", store.ReportKey("r1"))
}

func TestSnapshotStore_Load(t *testing.T) {
	mockClient := new(mocks.Client)
	snap := &moderation.Snapshot{
		RequestID: "r1",
		Mode:      reconcile.ModeClosed,
		Baseline:  []attachments.Attachment{att("a", "a.txt", 1)},
		Additions: []attachments.Attachment{att("b", "b.txt", 2)},
	}
	mockClient.On("GetObject", mock.Anything, "bucket", "snapshots/r1.json", mock.Anything).
		Return(snapshotBody(t, snap), nil)

	store := moderation.NewSnapshotStore(mockClient, "bucket", testConfig())
	got, err := store.Load(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, reconcile.ModeClosed, got.Mode)
	assert.Equal(t, snap.Additions, got.Additions)
	assert.Empty(t, got.Deletions)
	mockClient.AssertExpectations(t)
}

func TestSnapshotStore_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    io.ReadCloser
		err     error
		wantErr error
	}{
		{"NotFound", nil, minio.ErrorResponse{Code: "NoSuchKey"}, moderation.ErrRequestNotFound},
		{"Malformed", io.NopCloser(strings.NewReader("{")), nil, moderation.ErrInvalidSnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mocks.Client)
			mockClient.On("GetObject", mock.Anything, "bucket", "snapshots/r1.json", mock.Anything).
				Return(tt.body, tt.err)

			_, err := moderation.NewSnapshotStore(mockClient, "bucket", testConfig()).Load(context.Background(), "r1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("Unreachable", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "snapshots/r1.json", mock.Anything).
			Return(nil, errors.New("dial tcp: refused"))

		_, err := moderation.NewSnapshotStore(mockClient, "bucket", testConfig()).Load(context.Background(), "r1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, moderation.ErrRequestNotFound)
		assert.Contains(t, err.Error(), "refused")
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := moderation.NewSnapshotStore(new(mocks.Client), "bucket", testConfig()).Load(context.Background(), "../etc")
		assert.ErrorIs(t, err, moderation.ErrInvalidRequestID)
	})
}

func TestSnapshotStore_ArchiveReport(t *testing.T) {
	mockClient := new(mocks.Client)
	var written []byte
	mockClient.On("PutObject", mock.Anything, "bucket", "reports/r1.json", mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "application/json"
	})).
		Run(func(args mock.Arguments) {
			written, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	result := &reconcile.Result{Kind: "attachment", Added: []reconcile.Entry{{ID: "x"}}}
	key, err := moderation.NewSnapshotStore(mockClient, "bucket", testConfig()).ArchiveReport(context.Background(), "r1", result)
	require.NoError(t, err)
	assert.Equal(t, "reports/r1.json", key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(written, &decoded))
	assert.Equal(t, "attachment", decoded["kind"])
	assert.Equal(t, "open", decoded["mode"])
	mockClient.AssertExpectations(t)
}

func TestSnapshotStore_Save(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "bucket", "snapshots/r2.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := moderation.NewSnapshotStore(mockClient, "bucket", testConfig()).Save(context.Background(), &moderation.Snapshot{RequestID: "r2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestValidateRequestID(t *testing.T) {
	assert.NoError(t, moderation.ValidateRequestID("7f3a9c"))
	for _, id := range []string{"", "  ", "a/b", `a\b`, ".", ".."} {
		assert.ErrorIs(t, moderation.ValidateRequestID(id), moderation.ErrInvalidRequestID, id)
	}
}
