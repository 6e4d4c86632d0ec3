package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/vi-reader/config"
	"github.com/lixenwraith/vi-reader/input"
	"github.com/lixenwraith/vi-reader/terminal"
)

func main() {
	configPath := flag.String("config", "", "Config file whose [keys] table is applied")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	override, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	dev := terminal.NewDevice(os.Stdin, os.Stdout)
	if err := dev.Enable(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer dev.Disable()

	dev.Write([]byte("Input Test - press keys, Ctrl+C to quit\r\n"))

	dec := terminal.NewDecoder(dev)
	for {
		ev, err := dec.Next()
		if err != nil {
			dev.Write([]byte(fmt.Sprintf("ERROR: %v\r\n", err)))
			return
		}
		if ev.Key == terminal.KeyCtrlC {
			return
		}
		dev.Write([]byte(formatKeyEvent(ev, keys.Lookup(ev)) + "\r\n"))
	}
}

func formatKeyEvent(ev terminal.Event, action input.Action) string {
	keyName := ev.Key.String()
	if ev.Key == terminal.KeyRune {
		keyName = fmt.Sprintf("'%c'", ev.Rune)
	}
	return fmt.Sprintf("KEY: %-12s -> %s", keyName, action)
}
