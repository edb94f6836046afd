// Package database opens the optional MySQL connection used to page through
// existing tables.
//
// It provides a wrapper around GORM to configure MySQL connections from the
// application's configuration. Nothing here creates or migrates tables.
//
// # Connect
//
// Connect opens the pool and pings the server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table through SHOW COLUMNS. The CLI
// uses it to reject unknown tables before counting rows.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(db, "users")
package database
