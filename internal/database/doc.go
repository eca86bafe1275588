// Package database provides the pgx connection pool for the optional
// quick-status archive.
//
// The gatherer itself persists snapshots to flat files; Postgres only
// enters the picture when archive.enabled is set, so the pool is built
// on demand by the command and closed when the run ends.
package database
