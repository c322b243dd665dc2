// Package reconcile implements the three-way reconciliation and field-level
// diff engine used to present pending moderation changes.
//
// A moderation request proposes additions and deletions against a baseline
// collection of entities. Reconcile indexes the three collections by id and
// classifies every entity:
//
//   - Added: in the additions only.
//   - Deleted: in the deletions only. For open requests, only entities that
//     are still in the baseline are listed, with their baseline values; for
//     closed requests every recorded deletion is listed with the values of
//     the deletion record.
//   - Changed: in both additions and deletions (an edit under the same id),
//     unless the suggested version is field-equal to the baseline.
//   - Unchanged: everything else. Unchanged entities are not reported.
//
// # Catalogs
//
// A Catalog is the static, ordered field table of an entity kind. Each
// FieldSpec names a field, reads it as a typed Value, and declares whether it
// is relevant. Identifier and history fields are declared once as irrelevant
// and are then excluded from equality checks, entries and diff rows.
//
// # Baseline resolution
//
// A changed entity that is missing from the baseline is resolved explicitly:
// BaselineDeleted for open requests (current values render as the Deleted
// marker) and BaselineEmpty for closed requests (current values are read from
// the zero entity).
//
// # Concurrency
//
// The engine is pure. It performs no I/O, keeps no state between calls and
// never modifies its inputs, so independent calls may run concurrently.
//
// # Usage Example
//
//	catalog := attachments.Catalog()
//	result, err := reconcile.Reconcile(catalog, baseline, additions, deletions, reconcile.ModeOpen)
//	if err != nil {
//	    return err // duplicate ids
//	}
//	for _, change := range result.Changed {
//	    for _, row := range change.Rows {
//	        fmt.Println(row.Field, row.Current, row.Former, row.Suggested)
//	    }
//	}
package reconcile
