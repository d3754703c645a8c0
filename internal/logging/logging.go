// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the diagnostics logger.
//
// The TUI surfaces only short user-facing error strings; full underlying
// causes are recorded here, in ~/.clarilaw/clarilaw.log. Logging never
// writes to stdout/stderr while the TUI owns the terminal.
package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// logFileName is the diagnostics log file inside the config directory.
const logFileName = "clarilaw.log"

// Setup directs logrus at the diagnostics log file under dir and applies
// the requested level ("debug", "info", "warn", "error"). Unknown levels
// fall back to info. When the file cannot be opened the logger is silenced
// rather than corrupting the TUI's terminal output.
func Setup(dir, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.SetOutput(io.Discard)
		return err
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return err
	}
	log.SetOutput(f)
	return nil
}
