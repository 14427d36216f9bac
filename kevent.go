package main

// Input processing. Terminal adapters decode raw input into KeyEvents; the
// control loop applies one event at a time and redraws after each.

import (
	"errors"
	"fmt"
)

// EventKind enumerates the key events the editor understands.
type EventKind int

const (
	EventNone          EventKind = iota // Anything unrecognized; ignored.
	EventUp                             // Cursor one line up.
	EventDown                           // Cursor one line down.
	EventLeft                           // Cursor one column left.
	EventRight                          // Cursor one column right.
	EventChar                           // Insert Ch (a newline splits the line).
	EventEraseBackward                  // Backspace.
	EventEraseForward                   // Delete.
	EventSave                           // Write the buffer to its file.
	EventQuit                           // Leave the editor.
)

// KeyEvent is a normalized key press.
type KeyEvent struct {
	Kind EventKind
	Ch   rune // Only meaningful for EventChar.
}

// HandleKey applies ev to the editor. It returns false once the editor should
// exit.
func (e *Editor) HandleKey(ev KeyEvent) bool {
	switch ev.Kind {
	case EventQuit:
		if e.modified {
			e.addLog("Editor", "Quit with unsaved changes")
		}
		return false
	case EventSave:
		e.save()
	case EventUp:
		e.moveUp()
	case EventDown:
		e.moveDown()
	case EventLeft:
		e.moveLeft()
	case EventRight:
		e.moveRight()
	case EventChar:
		e.insertChar(ev.Ch)
	case EventEraseBackward:
		e.backspace()
	case EventEraseForward:
		e.deleteChar()
	case EventNone:
	default:
	}
	return true
}

// save writes the buffer out. Without a file name it does nothing, and
// failures only reach the log.
func (e *Editor) save() {
	err := e.SaveFile()
	if errors.Is(err, ErrNoFilename) {
		return
	}
	if err != nil {
		e.addLog("File", fmt.Sprintf("Save failed: %v", err))
	}
}

// Run is the central loop: draw, wait for a key, apply it, repeat.
func (e *Editor) Run(s Screen) error {
	for {
		// Redraw the screen before waiting for the next event.
		if err := e.draw(s); err != nil {
			return err
		}
		ev, err := s.PollKey()
		if err != nil {
			e.addLog("Screen", fmt.Sprintf("Input failed: %v", err))
			return err
		}
		if !e.HandleKey(ev) {
			return nil
		}
	}
}
