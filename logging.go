package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging points the standard logger at dir/snake.log when debug is on
// and discards everything otherwise. The screen belongs to the game, so
// nothing is ever written to stdout or stderr. A log file over maxLogSize is
// moved aside to snake.log.old before a new one is started.
func setupLogging(dir string, debug bool) (*os.File, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.Printf("---- snake started (pid %d) ----", os.Getpid())
	return f, nil
}
