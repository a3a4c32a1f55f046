// Package logging provides structured logging utilities for gmailer.
//
// It centralizes the slog attribute names used across the codebase and
// sanitizes PII: recipient addresses are hashed before logging so runs can
// be correlated without exposing who was mailed. Normal runs log at warn
// level to keep the single success line as the only stdout output; the
// --verbose flag lowers the level to debug.
package logging
