// Package logging assembles the structured slog loggers used across
// garmin-dev commands.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// provides component loggers plus a no-op logger for tests. Prefer these
// constructors over hand-rolled slog setup so every command emits log
// lines with the same shape.
package logging
