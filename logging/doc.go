// Package logging provides a minimal logging interface and adapters for engineroom.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the process runtime and manager use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - A rotating file writer for long-running supervisors
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	mgr := manager.New(func(o *manager.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
