// Package database provides a thin PostgreSQL connection helper for code
// that feeds query results into streams. It owns no pooling, migration, or
// schema logic: it only turns a Config into a ready *sqlx.DB.
package database
