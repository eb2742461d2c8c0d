// Package logging provides structured JSON logging for tourguide.
//
// Loggers write slog JSON lines to {dir}/debug.log (or stderr when no
// directory is configured). Child loggers created via WithComponent,
// WithStep, or With carry persistent attributes so every line from a
// component is attributable without repeating context at call sites.
package logging
