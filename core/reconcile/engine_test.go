package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFile is a minimal entity used across the engine tests.
type testFile struct {
	ID      string
	Name    string
	Size    int64
	History []string
}

func testCatalog() *Catalog[testFile] {
	return NewCatalog("file",
		func(f testFile) string { return f.ID },
		Ignored("id", func(f testFile) Value { return String(f.ID) }),
		Field("name", func(f testFile) Value { return String(f.Name) }),
		Field("size", func(f testFile) Value { return Int(f.Size) }),
		Ignored("history", func(f testFile) Value { return Strings(f.History) }),
	)
}

func file(id, name string, size int64) testFile {
	return testFile{ID: id, Name: name, Size: size}
}

func files(items ...testFile) []testFile { return items }

func TestReconcile_DeletedOnly(t *testing.T) {
	baseline := files(file("id1", "a.txt", 0))
	deletions := files(file("id1", "a.txt", 0))

	result, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeOpen)
	require.NoError(t, err)

	assert.Equal(t, []string{"id1"}, result.DeletedIDs())
	assert.Empty(t, result.AddedIDs())
	assert.Empty(t, result.Changed)
	assert.True(t, result.HasChanges())
}

func TestReconcile_AddedOnly(t *testing.T) {
	additions := files(file("id2", "b.txt", 0))

	result, err := Reconcile(testCatalog(), nil, additions, nil, ModeOpen)
	require.NoError(t, err)

	assert.Equal(t, []string{"id2"}, result.AddedIDs())
	assert.Empty(t, result.DeletedIDs())
	assert.Empty(t, result.Changed)

	require.Len(t, result.Added, 1)
	assert.Equal(t, []Value{String("b.txt"), Int(0)}, result.Added[0].Values)
}

func TestReconcile_ChangedField(t *testing.T) {
	baseline := files(file("id3", "c.txt", 10))
	additions := files(file("id3", "c.txt", 20))
	deletions := files(file("id3", "c.txt", 10))

	result, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeOpen)
	require.NoError(t, err)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Deleted)
	require.Len(t, result.Changed, 1)

	change := result.Changed[0]
	assert.Equal(t, "id3", change.ID)
	assert.Equal(t, BaselinePresent, change.Baseline)
	assert.Equal(t, []DiffRow{
		{Field: "name", Current: String("c.txt"), Former: String("c.txt"), Suggested: String("c.txt")},
		{Field: "size", Current: Int(10), Former: Int(10), Suggested: Int(20)},
	}, change.Rows)
	assert.False(t, change.Rows[0].Changed())
	assert.True(t, change.Rows[1].Changed())
}

func TestReconcile_NoOpEditSuppressed(t *testing.T) {
	baseline := files(file("id3", "c.txt", 10))
	additions := files(file("id3", "c.txt", 10))
	deletions := files(file("id3", "c.txt", 10))

	result, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeOpen)
	require.NoError(t, err)

	assert.Empty(t, result.Changed)
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Deleted)
	assert.False(t, result.HasChanges())
}

func TestReconcile_NoOpIgnoresIrrelevantFields(t *testing.T) {
	base := file("id3", "c.txt", 10)
	edited := base
	edited.History = []string{"uploaded again"}

	result, err := Reconcile(testCatalog(), files(base), files(edited), files(base), ModeOpen)
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
}

func TestReconcile_ClosedMissingBaselineUsesEmptyEntity(t *testing.T) {
	additions := files(file("id4", "d.txt", 0))
	deletions := files(file("id4", "d.txt", 0))

	result, err := Reconcile(testCatalog(), nil, additions, deletions, ModeClosed)
	require.NoError(t, err)

	require.Len(t, result.Changed, 1)
	change := result.Changed[0]
	assert.Equal(t, "id4", change.ID)
	assert.Equal(t, BaselineEmpty, change.Baseline)

	name := change.Rows[0]
	assert.Equal(t, "name", name.Field)
	assert.Equal(t, String(""), name.Current)
	assert.Equal(t, String("d.txt"), name.Former)
	assert.Equal(t, String("d.txt"), name.Suggested)
}

func TestReconcile_OpenMissingBaselineUsesDeletedMarker(t *testing.T) {
	additions := files(file("id5", "e.txt", 1))
	deletions := files(file("id5", "e.txt", 1))

	result, err := Reconcile(testCatalog(), nil, additions, deletions, ModeOpen)
	require.NoError(t, err)

	// The deleted marker never compares equal, so even an unchanged edit is reported.
	require.Len(t, result.Changed, 1)
	change := result.Changed[0]
	assert.Equal(t, BaselineDeleted, change.Baseline)
	for _, row := range change.Rows {
		assert.Equal(t, KindDeleted, row.Current.Kind(), row.Field)
	}
	assert.Equal(t, String("e.txt"), change.Rows[0].Suggested)
}

func TestReconcile_OpenModeFiltersDeletionsByBaseline(t *testing.T) {
	baseline := files(file("keep", "k.txt", 1))
	deletions := files(file("gone", "g.txt", 1), file("keep", "k.txt", 1))

	result, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeOpen)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep"}, result.DeletedIDs())
}

func TestReconcile_ClosedModeKeepsAllDeletions(t *testing.T) {
	baseline := files(file("keep", "k.txt", 1))
	deletions := files(file("gone", "g.txt", 1), file("keep", "k.txt", 1))

	result, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeClosed)
	require.NoError(t, err)

	assert.Equal(t, []string{"gone", "keep"}, result.DeletedIDs())
}

func TestReconcile_ClosedModeDeletedValuesComeFromDeletions(t *testing.T) {
	baseline := files(file("id1", "renamed-later.txt", 99))
	deletions := files(file("id1", "original.txt", 5))

	closed, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeClosed)
	require.NoError(t, err)
	require.Len(t, closed.Deleted, 1)
	assert.Equal(t, []Value{String("original.txt"), Int(5)}, closed.Deleted[0].Values)

	open, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeOpen)
	require.NoError(t, err)
	require.Len(t, open.Deleted, 1)
	assert.Equal(t, []Value{String("renamed-later.txt"), Int(99)}, open.Deleted[0].Values)
}

func TestReconcile_OpenModeDeletedOrderFollowsBaseline(t *testing.T) {
	baseline := files(file("b", "b", 0), file("a", "a", 0), file("c", "c", 0))
	deletions := files(file("c", "c", 0), file("a", "a", 0), file("b", "b", 0))

	open, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeOpen)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, open.DeletedIDs())

	closed, err := Reconcile(testCatalog(), baseline, nil, deletions, ModeClosed)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, closed.DeletedIDs())
}

func TestReconcile_AddedOrderPreserved(t *testing.T) {
	additions := files(file("z", "z", 0), file("m", "m", 0), file("a", "a", 0))

	result, err := Reconcile(testCatalog(), nil, additions, nil, ModeOpen)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, result.AddedIDs())
}

func TestReconcile_ChangedOrderFollowsDeletions(t *testing.T) {
	baseline := files(file("x", "x", 1), file("y", "y", 1))
	additions := files(file("x", "x", 2), file("y", "y", 2))
	deletions := files(file("y", "y", 1), file("x", "x", 1))

	result, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeOpen)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, result.ChangedIDs())
}

func TestReconcile_EmptyInputs(t *testing.T) {
	for _, mode := range []Mode{ModeOpen, ModeClosed} {
		t.Run(mode.String(), func(t *testing.T) {
			result, err := Reconcile(testCatalog(), nil, nil, nil, mode)
			require.NoError(t, err)
			assert.Empty(t, result.Added)
			assert.Empty(t, result.Deleted)
			assert.Empty(t, result.Changed)
			assert.Empty(t, result.Warnings)
			assert.Equal(t, []string{"name", "size"}, result.Fields)
			assert.Equal(t, mode, result.Mode)
		})
	}
}

func TestReconcile_UnchangedBaselineNotReported(t *testing.T) {
	baseline := files(file("still", "s.txt", 1))

	result, err := Reconcile(testCatalog(), baseline, nil, nil, ModeOpen)
	require.NoError(t, err)
	assert.False(t, result.HasChanges())
}

func TestReconcile_DuplicateIDs(t *testing.T) {
	dup := files(file("id1", "a", 0), file("id1", "b", 0))

	tests := []struct {
		name       string
		baseline   []testFile
		additions  []testFile
		deletions  []testFile
		collection string
	}{
		{name: "Baseline", baseline: dup, collection: CollectionBaseline},
		{name: "Additions", additions: dup, collection: CollectionAdditions},
		{name: "Deletions", deletions: dup, collection: CollectionDeletions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Reconcile(testCatalog(), tt.baseline, tt.additions, tt.deletions, ModeOpen)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrDuplicateID))

			var dupErr *DuplicateIDError
			require.True(t, errors.As(err, &dupErr))
			assert.Equal(t, tt.collection, dupErr.Collection)
			assert.Equal(t, "id1", dupErr.ID)
		})
	}
}

func TestReconcile_PartitionIsDisjoint(t *testing.T) {
	baseline := files(file("b1", "b1", 1), file("c1", "c1", 1), file("d1", "d1", 1), file("n1", "n1", 1))
	additions := files(file("a1", "a1", 1), file("c1", "c1", 2), file("n1", "n1", 1))
	deletions := files(file("d1", "d1", 1), file("c1", "c1", 1), file("n1", "n1", 1), file("x1", "x1", 1))

	for _, mode := range []Mode{ModeOpen, ModeClosed} {
		t.Run(mode.String(), func(t *testing.T) {
			result, err := Reconcile(testCatalog(), baseline, additions, deletions, mode)
			require.NoError(t, err)

			seen := make(map[string]string)
			record := func(group string, ids []string) {
				for _, id := range ids {
					prev, dup := seen[id]
					assert.False(t, dup, "%s appears in %s and %s", id, prev, group)
					seen[id] = group
				}
			}
			record("added", result.AddedIDs())
			record("deleted", result.DeletedIDs())
			record("changed", result.ChangedIDs())

			assert.Equal(t, []string{"a1"}, result.AddedIDs())
			assert.Equal(t, []string{"c1"}, result.ChangedIDs())
			// n1 is a no-op edit and is suppressed in both modes.
			assert.NotContains(t, seen, "n1")
			if mode == ModeOpen {
				assert.Equal(t, []string{"d1"}, result.DeletedIDs())
			} else {
				assert.Equal(t, []string{"d1", "x1"}, result.DeletedIDs())
			}
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	baseline := files(file("b1", "b1", 1), file("c1", "c1", 1))
	additions := files(file("a1", "a1", 1), file("c1", "c1", 2))
	deletions := files(file("b1", "b1", 1), file("c1", "c1", 1))

	first, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeOpen)
	require.NoError(t, err)
	second, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeOpen)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcile_DoesNotModifyInputs(t *testing.T) {
	baseline := files(file("b1", "b1", 1))
	additions := files(file("a1", "a1", 1))
	deletions := files(file("b1", "b1", 1))
	before := [][]testFile{
		append([]testFile(nil), baseline...),
		append([]testFile(nil), additions...),
		append([]testFile(nil), deletions...),
	}

	_, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeClosed)
	require.NoError(t, err)

	assert.Equal(t, before, [][]testFile{baseline, additions, deletions})
}

func TestResult_Summary(t *testing.T) {
	baseline := files(file("b1", "b1", 1), file("c1", "c1", 1))
	additions := files(file("a1", "a1", 1), file("c1", "c1", 2))
	deletions := files(file("b1", "b1", 1), file("c1", "c1", 1))

	result, err := Reconcile(testCatalog(), baseline, additions, deletions, ModeOpen)
	require.NoError(t, err)

	summary := result.Summary()
	assert.Equal(t, Summary{Kind: "file", Mode: ModeOpen, Added: 1, Deleted: 1, Changed: 1}, summary)
	assert.Equal(t, "files (open): 1 added, 1 deleted, 1 changed", summary.String())

	empty, err := Reconcile(testCatalog(), nil, nil, nil, ModeClosed)
	require.NoError(t, err)
	assert.Equal(t, "no changes in files (closed)", empty.Summary().String())
}
