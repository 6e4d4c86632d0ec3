package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tempFiles returns a regular file for stdin and one for stdout
// Neither is a terminal, so raw mode must be refused
func tempFiles(t *testing.T) (stdin, stdout *os.File) {
	t.Helper()
	dir := t.TempDir()
	var err error
	if stdin, err = os.Create(filepath.Join(dir, "stdin")); err != nil {
		t.Fatal(err)
	}
	if stdout, err = os.Create(filepath.Join(dir, "stdout")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		stdin.Close()
		stdout.Close()
	})
	return stdin, stdout
}

func readAll(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestRun_Version(t *testing.T) {
	stdin, stdout := tempFiles(t)
	var stderr bytes.Buffer

	if code := run([]string{"-version"}, stdin, stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := readAll(t, stdout); got != "vi-reader "+version+"\n" {
		t.Errorf("stdout = %q", got)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_Fatal(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	badConfig := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badConfig, []byte("colour = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	badKeys := filepath.Join(dir, "keys.toml")
	if err := os.WriteFile(badKeys, []byte("[keys]\nctrl_q = \"explode\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"missing file", []string{filepath.Join(dir, "absent.txt")}, "open "},
		{"missing config", []string{"-config", filepath.Join(dir, "absent.toml")}, "load config"},
		{"unknown config key", []string{"-config", badConfig}, "unknown keys"},
		{"unknown action", []string{"-config", badKeys}, "unknown action"},
		{"not a terminal", []string{file}, "not a terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdin, stdout := tempFiles(t)
			var stderr bytes.Buffer

			if code := run(tt.args, stdin, stdout, &stderr); code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if !strings.HasPrefix(stderr.String(), "vi-reader: ") || !strings.Contains(stderr.String(), tt.contains) {
				t.Errorf("stderr = %q, want diagnostic containing %q", stderr.String(), tt.contains)
			}
			if got := readAll(t, stdout); got != "\x1b[2J\x1b[H" {
				t.Errorf("stdout = %q, want clear and home", got)
			}
		})
	}
}

func TestRun_Usage(t *testing.T) {
	isolateConfig(t)
	stdin, stdout := tempFiles(t)
	var stderr bytes.Buffer

	if code := run([]string{"a.txt", "b.txt"}, stdin, stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if code := run([]string{"-nope"}, stdin, stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "usage: vi-reader") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_NoLogOutputWithoutDebug(t *testing.T) {
	isolateConfig(t)

	var logged bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(prev) })

	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdin, stdout := tempFiles(t)
	var stderr bytes.Buffer
	if code := run([]string{file}, stdin, stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if logged.Len() != 0 {
		t.Errorf("log written without debug: %q", logged.String())
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if strings.Contains(stderr.String(), "config:") {
		t.Errorf("log line leaked to stderr: %q", stderr.String())
	}
}
