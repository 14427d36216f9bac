package main

// Editor session state. Owns the buffer, cursor, scroll offset and the file
// the buffer came from, and coordinates loading, saving and drawing.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrNoFilename is returned when saving a buffer that has no file.
var ErrNoFilename = errors.New("no filename")

// Editor is the main controller struct that holds all session state.
type Editor struct {
	buffer   *Buffer   // Text being edited.
	cursor   Cursor    // Logical cursor position.
	scrollY  int       // First buffer line shown on screen.
	height   int       // Viewport rows as of the last draw.
	filename string    // Save target; empty means none.
	modified bool      // True if changes haven't been saved.
	renderer *Renderer // Layout engine.

	logMessages    []string // Recent log lines.
	maxLogMessages int      // Maximum capacity of the log ring buffer.
}

// NewEditor creates a new editor instance with a default empty buffer.
func NewEditor() *Editor {
	maxLogs := Config.NumLogs
	if maxLogs < 1 {
		maxLogs = 50
	}
	e := &Editor{
		buffer:         NewBuffer(),
		height:         1,
		renderer:       NewRenderer(Config.TabWidth),
		maxLogMessages: maxLogs,
	}
	e.addLog("Editor", "Editor initialized")
	return e
}

func (e *Editor) addLog(group, msg string) {
	t := time.Now()
	timestamp := fmt.Sprintf("[%02d:%02d:%02d]", t.Hour(), t.Minute(), t.Second())
	logMsg := fmt.Sprintf("%s [%s] %s", timestamp, group, msg)
	e.logMessages = append(e.logMessages, logMsg)

	if len(e.logMessages) > e.maxLogMessages {
		e.logMessages = e.logMessages[len(e.logMessages)-e.maxLogMessages:]
	}

	if Config.UseLogFile {
		f, err := os.OpenFile(Config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

func (e *Editor) markModified() {
	e.modified = true
}

// LoadFile reads filename into the buffer and makes it the save target. A file
// that cannot be read leaves an empty buffer behind.
func (e *Editor) LoadFile(filename string) {
	e.filename = filename
	e.cursor = Cursor{}
	e.scrollY = 0
	e.modified = false

	text, err := readFile(filename)
	if err != nil {
		e.addLog("File", fmt.Sprintf("Open %s failed: %v", filename, err))
		e.buffer = NewBuffer()
		return
	}
	e.buffer = LoadBuffer(text)
	e.addLog("File", fmt.Sprintf("Opened %s (%d lines)", filename, e.buffer.LineCount()))
}

// SaveFile writes the buffer content back to disk.
func (e *Editor) SaveFile() error {
	if e.filename == "" {
		return ErrNoFilename
	}

	text := e.buffer.Serialize()
	if err := writeFile(e.filename, text); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.filename, err)
	}
	e.modified = false
	e.addLog("File", fmt.Sprintf("%q written, %d bytes", e.filename, len(text)))
	return nil
}

// draw queries the terminal size, keeps the cursor in view and paints a full
// frame.
func (e *Editor) draw(s Screen) error {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		e.addLog("Screen", fmt.Sprintf("Unusable terminal size %dx%d", w, h))
		return fmt.Errorf("%w: %dx%d", ErrTerminalSize, w, h)
	}

	e.height = h
	e.scrollToCursor()
	frame := e.renderer.Render(e.buffer, e.cursor, e.scrollY, w, h)
	if err := s.Show(frame); err != nil {
		e.addLog("Screen", fmt.Sprintf("Draw failed: %v", err))
		return err
	}
	return nil
}

// WriteLog copies the recent log lines to w, oldest first.
func (e *Editor) WriteLog(w io.Writer) {
	for _, msg := range e.logMessages {
		fmt.Fprintln(w, msg)
	}
}
