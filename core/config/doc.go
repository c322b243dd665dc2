// Package config provides configuration management for the moderation diff service.
//
// Settings are read from environment variables, optionally overridden by a
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP listen address and API key (SERVER_PORT, SERVER_API_KEY)
//   - Database: mysql or sqlite connection (DATABASE_DRIVER, DATABASE_HOST, ...)
//   - Storage: S3/MinIO credentials and bucket (STORAGE_ENDPOINT, STORAGE_BUCKET, ...)
//   - Log: level and format (LOG_LEVEL, LOG_FORMAT)
//   - Moderation: snapshot and report prefixes, cache TTL (MODERATION_CACHE_TTL_SECONDS, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
