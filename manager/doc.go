// Package manager orchestrates a named collection of engine processes
// sharing one protocol binding. It is the only component the surrounding
// application is meant to depend on: events reach the application through a
// sink the manager forwards to, never through a process's bus directly.
//
// Broadcast operations apply to every registered engine and stop at the
// first failure without rolling back engines already updated. Engines are
// independent, so partial application is accepted and reported rather than
// hidden behind a rollback.
package manager
