package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/vi-reader/terminal"
)

// handleCrash resets the terminal and prints the panic with its stack trace
func handleCrash(stdout *os.File, stderr io.Writer, r any) {
	// Restore terminal to sane state immediately
	terminal.EmergencyReset(stdout)

	log.Printf("crash: %v\n%s", r, debug.Stack())

	fmt.Fprintf(stderr, "\r\n\x1b[31mVI-READER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
}
