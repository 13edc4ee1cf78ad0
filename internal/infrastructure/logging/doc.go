// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: colored console output
//
// Every shell component takes a *Logger; none of them log through the
// standard library. Unknown-id warnings, listener panics, and boot
// progress all flow through here with structured fields.
package logging
