// Package model defines domain entities for the Arena bot.
//
// The model package contains struct definitions for the records held in the
// guild-scoped data store. Models are used across all layers; they carry no
// behavior beyond derived accessors.
//
// # Domain Entities
//
//   - Tournament: a guild's tournament record with an active flag
//   - GuildSettings: per-guild bot configuration, keyed by guild ID
//   - Standing: a member's points, career-wide or within one tournament
//
// # Identifiers
//
// Record IDs are platform snowflake strings; a tournament's creation time is
// derived from its ID rather than stored.
package model
