// Package log provides structured logging for nslist.
//
// Package: log
// Title: nslist Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Coded errors from core/error are logged with
//              their code, severity and details as fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// Usage:
//
//	import mdwlog "github.com/msto63/nslist/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Name:   "runner",
//	})
//	runLog := logger.WithRequestID(runID)
//	runLog.Debug("step executed", mdwlog.Fields{"op": "insert", "index": 1})
//	runLog.LogError(err)
//
// Derived loggers (WithField, WithRequestID, ...) are copies; the parent is
// never modified. Writes to a shared output are serialized.
package log
