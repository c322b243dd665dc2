package moderation_test

import (
	"context"
	"testing"

	"moderation-diff/core/reconcile"
	"moderation-diff/core/storage/mocks"
	"moderation-diff/feature/attachments"
	"moderation-diff/feature/moderation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CompareFromDatabase(t *testing.T) {
	svc := moderation.NewService(setupDB(t), new(mocks.Client), "bucket", testConfig(), zap.NewNop())
	assert.Equal(t, moderation.SourceDatabase, svc.Source())

	t.Run("OpenRequest", func(t *testing.T) {
		result, err := svc.Compare(context.Background(), "req-open")
		require.NoError(t, err)

		assert.Equal(t, reconcile.ModeOpen, result.Mode)
		assert.Equal(t, []string{"d"}, result.AddedIDs())
		assert.Equal(t, []string{"c"}, result.DeletedIDs())
		assert.Equal(t, []string{"b"}, result.ChangedIDs())

		rows := result.Changed[0].Rows
		assert.Equal(t, "filename", rows[0].Field)
		assert.Equal(t, reconcile.String("b.txt"), rows[0].Current)
		assert.Equal(t, reconcile.String("b-renamed.txt"), rows[0].Suggested)
	})

	t.Run("ClosedRequest", func(t *testing.T) {
		result, err := svc.Compare(context.Background(), "req-closed")
		require.NoError(t, err)

		assert.Equal(t, reconcile.ModeClosed, result.Mode)
		assert.Equal(t, []string{"d"}, result.AddedIDs())
		// Closed requests list recorded deletions even if the baseline lost them.
		assert.Equal(t, []string{"gone"}, result.DeletedIDs())
		assert.Empty(t, result.Changed)
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "nope")
		assert.ErrorIs(t, err, moderation.ErrRequestNotFound)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), "a/b")
		assert.ErrorIs(t, err, moderation.ErrInvalidRequestID)
	})
}

func TestService_CompareFromStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	base := att("a", "a.txt", 1)
	edited := base
	edited.Size = 2

	snap := &moderation.Snapshot{
		RequestID: "r1",
		Mode:      reconcile.ModeOpen,
		Additions: []attachments.Attachment{edited},
		Deletions: []attachments.Attachment{base},
	}
	mockClient.On("GetObject", mock.Anything, "bucket", "snapshots/r1.json", mock.Anything).
		Return(snapshotBody(t, snap), nil).Once()

	svc := moderation.NewService(nil, mockClient, "bucket", testConfig(), zap.NewNop())
	assert.Equal(t, moderation.SourceStorage, svc.Source())

	for i := 0; i < 2; i++ {
		result, err := svc.Compare(context.Background(), "r1")
		require.NoError(t, err)

		// Missing from the baseline of an open request.
		require.Len(t, result.Changed, 1)
		assert.Equal(t, reconcile.BaselineDeleted, result.Changed[0].Baseline)
		assert.Equal(t, reconcile.KindDeleted, result.Changed[0].Rows[0].Current.Kind())
	}
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestService_DuplicateIDs(t *testing.T) {
	mockClient := new(mocks.Client)
	snap := &moderation.Snapshot{
		RequestID: "dup",
		Additions: []attachments.Attachment{att("x", "1", 1), att("x", "2", 2)},
	}
	mockClient.On("GetObject", mock.Anything, "bucket", "snapshots/dup.json", mock.Anything).
		Return(snapshotBody(t, snap), nil)

	svc := moderation.NewService(nil, mockClient, "bucket", testConfig(), zap.NewNop())
	_, err := svc.Compare(context.Background(), "dup")
	assert.ErrorIs(t, err, reconcile.ErrDuplicateID)
}
