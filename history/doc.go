// Package history provides a volatile, bounded per-engine event journal.
// The manager records every event it forwards so callers can inspect an
// engine's recent activity after the fact without having subscribed in
// time. Retention is in-memory only; nothing survives a restart.
package history
