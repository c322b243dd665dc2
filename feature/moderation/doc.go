// Package moderation presents the attachment changes proposed by moderation
// requests.
//
// A moderation request proposes additions and deletions against the
// attachments of a document. The package loads the three collections, runs
// them through the core/reconcile engine with the attachment catalog, and
// exposes the result over HTTP and as text tables.
//
// # Sources
//
//   - Database: requests from the moderation_requests table, baseline from
//     the attachments table of the document (gorm, mysql or sqlite).
//   - Storage: JSON snapshots under the snapshot prefix of the bucket, used
//     when no database is configured. Loaded snapshots are cached for a TTL.
//   - Files: YAML or JSON snapshots on disk, for the compare command. Files
//     that declare "fields" hold generic records instead of attachments.
//
// Requests that are approved or rejected are reconciled in closed mode;
// pending and in-progress requests in open mode.
//
// # HTTP Endpoints
//
//   - GET /moderation/:id/attachments : Full result (?archive=true stores the report, ?format=table renders text).
//   - GET /moderation/:id/attachments/summary : Added, deleted and changed counts.
package moderation
