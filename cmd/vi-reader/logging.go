package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// maxLogSize is the size above which the log is rotated to <path>.1
const maxLogSize = 1 << 20

// setupLogging routes the standard logger to path when debug is set, to io.Discard otherwise
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool, path string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		os.Rename(path, path+".1")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f
}
