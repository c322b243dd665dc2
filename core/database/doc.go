// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is agnostic
// to the specific schema regarding connection establishment (MySQL in production, sqlite for
// local runs and tests).
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The moderation feature
// uses MissingColumns at startup to verify that the attachment and moderation request
// tables carry the columns its models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "attachments", []string{"filename", "sha1"})
package database
