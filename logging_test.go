package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f, err := setupLogging(t.TempDir(), false)
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if f != nil {
		f.Close()
		t.Error("expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := filepath.Join(t.TempDir(), "logs")
	f, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	defer f.Close()

	log.Println("hello")

	info, err := os.Stat(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}

func TestSetupLoggingRotates(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := t.TempDir()
	path := filepath.Join(dir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := setupLogging(dir, true)
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	defer f.Close()

	old, err := os.Stat(path + ".old")
	if err != nil {
		t.Fatalf("rotated log missing: %v", err)
	}
	if old.Size() != maxLogSize+1 {
		t.Errorf("rotated size = %d", old.Size())
	}

	cur, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if cur.Size() >= maxLogSize {
		t.Errorf("new log size = %d, want a fresh file", cur.Size())
	}
}
