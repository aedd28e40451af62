// Package repository implements data access for the Arena bot's guild-scoped
// store.
//
// Each repository wraps the database.Database interface with typed methods
// for one record kind. Record IDs cross the repository boundary as plain
// snowflake strings; the SurrealDB record-ID form (table:id) is an
// implementation detail kept inside this package.
//
// Repositories return database.ErrNotFound-free APIs where absence is a
// valid state: lookups return (nil, nil) for missing records, and the
// GetOrCreate methods are idempotent upserts.
package repository
