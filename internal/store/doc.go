// Package store provides SQLite-backed durable storage for the
// employee roster.
//
// The database holds a single employees table; SaveAll replaces its
// contents in one transaction so a saved roster always reflects one
// consistent in-memory state. Opening is idempotent: pragmas and the
// embedded schema are applied on every Open.
package store
