// Package logging provides slog-based structured logging for foodindex, with
// optional size-rotated file output under ~/.foodindex/logs/.
//
// Library packages never configure logging themselves; they accept a
// *slog.Logger and fall back to slog.Default().
package logging
