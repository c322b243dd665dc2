package moderation

import "time"

// Config holds configuration for the moderation feature.
type Config struct {
	// SnapshotPrefix is the object prefix request snapshots are read from.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots"`
	// ReportPrefix is the object prefix archived reports are written to.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// CacheTTLSeconds is how long loaded snapshots are cached. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}

// CacheTTL returns the snapshot cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
