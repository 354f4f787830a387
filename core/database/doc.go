// Package database handles database connections and schema verification.
//
// It provides a wrapper around GORM to open the prepared ITAC SQLite database
// (the default) or a MySQL mirror of it, configured through the application's
// configuration.
//
// # Connect
//
// Connect establishes the connection with a silent GORM logger, pool limits
// and a ping with timeout. For SQLite it refuses to open a missing file, since
// the driver would otherwise create an empty database and every query would
// fail later in a confusing way.
//
// # Schema Verification
//
// VerifySchema inspects the connected database (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite) and reports tables or columns the API queries
// rely on that are absent. Startup logs the result so stale parser artifacts
// are visible before the first failing request.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("database unavailable", zap.Error(err))
//	}
package database
