// Package checks holds the individual storage and database checks run by the
// integrity feature.
package checks
