// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	exporter := NewBufferedExporter(0)
	logger := New(Config{Level: LevelWarn, Quiet: true, Exporter: exporter})

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("also kept")

	entries := exporter.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "kept" || entries[0].Level != "WARN" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Message != "also kept" || entries[1].Level != "ERROR" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestLogger_ExporterReceivesAttrs(t *testing.T) {
	exporter := NewBufferedExporter(0)
	logger := New(Config{Quiet: true, Service: "translator", Exporter: exporter})

	logger.Info("resolved placeholders", "substitutions", 3, "warnings", 1)

	entries := exporter.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Service != "translator" {
		t.Errorf("service = %q, want translator", entry.Service)
	}
	if entry.Attrs["substitutions"] != 3 {
		t.Errorf("attrs[substitutions] = %v, want 3", entry.Attrs["substitutions"])
	}
	if entry.Attrs["warnings"] != 1 {
		t.Errorf("attrs[warnings] = %v, want 1", entry.Attrs["warnings"])
	}
}

func TestLogger_FileLogging(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelInfo,
		LogDir:  dir,
		Service: "cli",
		Quiet:   true,
	})

	logger.Info("wrote packages", "count", 3)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	name := "cli_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "wrote packages") {
		t.Errorf("log file missing message, got: %s", data)
	}
	if !strings.Contains(string(data), `"service":"cli"`) {
		t.Errorf("log file missing service attribute, got: %s", data)
	}
}

func TestLogger_FileLoggingBadDirDegrades(t *testing.T) {
	logger := New(Config{
		LogDir:  string([]byte{0}),
		Service: "cli",
		Quiet:   true,
	})
	// Should not panic; stderr-only fallback.
	logger.Info("still logs")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestLogger_With(t *testing.T) {
	exporter := NewBufferedExporter(0)
	logger := New(Config{Quiet: true, Exporter: exporter})

	child := logger.With("bundle", "laptop-request")
	child.Info("validated")

	entries := exporter.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	exporter := NewBufferedExporter(0)
	logger := New(Config{Quiet: true, Exporter: exporter})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Info("concurrent", "worker", n, "iteration", j)
			}
		}(i)
	}
	wg.Wait()

	if got := len(exporter.Entries()); got != 200 {
		t.Errorf("got %d entries, want 200", got)
	}
}

func TestBufferedExporter_Cap(t *testing.T) {
	exporter := NewBufferedExporter(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := LogEntry{Message: string(rune('a' + i))}
		if err := exporter.Export(ctx, entry); err != nil {
			t.Fatalf("Export() error: %v", err)
		}
	}

	entries := exporter.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Message != "c" || entries[2].Message != "e" {
		t.Errorf("cap did not drop oldest: %+v", entries)
	}
}

func TestBufferedExporter_Closed(t *testing.T) {
	exporter := NewBufferedExporter(0)
	if err := exporter.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := exporter.Export(context.Background(), LogEntry{}); err == nil {
		t.Error("Export after Close should fail")
	}
}

func TestWriterExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := NewWriterExporter(&buf)

	entry := LogEntry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   "INFO",
		Message: "hello",
	}
	if err := exporter.Export(context.Background(), entry); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[INFO] hello") {
		t.Errorf("unexpected output: %q", out)
	}
}
