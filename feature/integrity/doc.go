// Package integrity provides health checks for the infrastructure the
// moderation feature depends on.
//
// # Checks Provided
//
//   - Structure: Checks that the snapshot and report prefixes exist in the storage bucket.
//   - Schema: Validates that the portal database carries every column read for
//     attachments and moderation requests. Skipped when no database is connected.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
package integrity
