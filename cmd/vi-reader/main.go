package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/vi-reader/config"
	"github.com/lixenwraith/vi-reader/document"
	"github.com/lixenwraith/vi-reader/input"
	"github.com/lixenwraith/vi-reader/session"
	"github.com/lixenwraith/vi-reader/status"
	"github.com/lixenwraith/vi-reader/terminal"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code
// Every fatal error leaves through fatal after the terminal has been restored
func run(args []string, stdin, stdout *os.File, stderr io.Writer) (code int) {
	// Nothing is logged before setupLogging decides the destination
	log.SetOutput(io.Discard)

	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			handleCrash(stdout, stderr, r)
			code = 1
		}
	}()

	fs := flag.NewFlagSet("vi-reader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Config file path (default: user config dir)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	logPath := fs.String("log", "", "Debug log path (default: user cache dir)")
	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: vi-reader [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "vi-reader %s\n", version)
		return 0
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fatal(stdout, stderr, err)
	}
	if *debug {
		cfg.Debug = true
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	if cfg.LogFile == "" {
		cfg.LogFile = config.DefaultLogPath()
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogFile); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("vi-reader %s starting, args %q", version, fs.Args())

	if err := view(fs.Arg(0), cfg, stdin, stdout); err != nil {
		return fatal(stdout, stderr, err)
	}
	log.Printf("vi-reader exiting")
	return 0
}

// view loads the document and runs a session in raw mode
// Raw mode is restored when view returns, on every path
func view(path string, cfg *config.Config, stdin, stdout *os.File) error {
	override, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	doc := document.New("")
	if path != "" {
		if doc, err = document.Open(path); err != nil {
			return err
		}
	}

	dev := terminal.NewDevice(stdin, stdout)
	if err := dev.Enable(); err != nil {
		return err
	}
	defer func() {
		if err := dev.Disable(); err != nil {
			log.Printf("restore terminal: %v", err)
		}
	}()

	s, err := session.New(dev, session.Options{
		Doc:         doc,
		Keys:        keys,
		Message:     status.NewMessage(cfg.MessageTimeout.Duration),
		Banner:      "vi-reader -- version " + version,
		HelpMessage: cfg.HelpMessage,
	})
	if err != nil {
		return err
	}
	return s.Run()
}

// fatal clears the screen and reports err, returning the failure exit code
func fatal(stdout *os.File, stderr io.Writer, err error) int {
	log.Printf("fatal: %v", err)
	stdout.Write(terminal.CSIClear)
	stdout.Write(terminal.CSIHome)
	fmt.Fprintf(stderr, "vi-reader: %v\n", err)
	return 1
}
