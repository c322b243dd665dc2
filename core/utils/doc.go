// Package utils provides loose type conversion helpers used when decoding
// snapshot files and database rows whose column types are not known upfront.
package utils
