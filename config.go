package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import "flag"

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	TabWidth    int    // Columns a tab character expands to on screen.
	Backend     string // Terminal library: termbox or tcell.
	UseLogFile  bool   // Whether to write debug logs to a file.
	LogFilePath string // Where to store the debug logs.
	NumLogs     int    // How many recent log lines are kept in memory.
	ShowVersion bool   // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	flag.IntVar(&Config.TabWidth, "tab-width", 4, "Tab width")
	flag.StringVar(&Config.Backend, "backend", "termbox", "Terminal backend (termbox or tcell)")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", "/tmp/kiro-debug.log", "Path to log file")
	flag.IntVar(&Config.NumLogs, "num-logs", 50, "Number of log lines kept in memory")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}
