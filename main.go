package main

// The entry point of the kiro editor. It parses flags, loads the file named on
// the command line, sets up the terminal and runs the editor loop.

import (
	"flag"
	"fmt"
	"os"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// run returns before os.Exit so its deferred terminal cleanup happens.
	os.Exit(run())
}

func run() int {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return 0
	}

	editor := NewEditor()
	if flag.NArg() > 0 {
		editor.LoadFile(flag.Arg(0))
	}

	screen, err := NewScreen(Config.Backend)
	if err != nil {
		editor.addLog("Screen", fmt.Sprintf("Backend %q init failed: %v", Config.Backend, err))
		editor.WriteLog(os.Stderr)
		fmt.Fprintf(os.Stderr, "kiro: %v\n", err)
		return 1
	}

	if err := runEditor(editor, screen); err != nil {
		// The terminal is restored by now, so the log is readable.
		editor.WriteLog(os.Stderr)
		fmt.Fprintf(os.Stderr, "kiro: %v\n", err)
		return 1
	}
	return 0
}

// runEditor runs the editor loop and always restores the terminal, even when
// the loop panics.
func runEditor(editor *Editor, screen Screen) error {
	defer screen.Close()
	return editor.Run(screen)
}
