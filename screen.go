package main

// Terminal adapters. A Screen reports its size, delivers decoded key events
// and paints Frames produced by the renderer. The default adapter is built on
// termbox; screen_tcell.go provides a tcell based one.

import (
	"errors"
	"fmt"

	"github.com/nsf/termbox-go"
)

// ErrTerminalSize is returned when the terminal reports unusable dimensions.
var ErrTerminalSize = errors.New("cannot determine terminal size")

// Screen is the terminal as seen by the editor.
type Screen interface {
	Size() (cols, rows int)
	PollKey() (KeyEvent, error)
	Show(f *Frame) error
	Close()
}

// NewScreen initializes the terminal backend named by backend.
func NewScreen(backend string) (Screen, error) {
	var (
		s   Screen
		err error
	)
	switch backend {
	case "", "termbox":
		s, err = newTermboxScreen()
	case "tcell":
		s, err = newTcellScreen()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

type termboxScreen struct{}

func newTermboxScreen() (*termboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &termboxScreen{}, nil
}

func (s *termboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (s *termboxScreen) Show(f *Frame) error {
	for _, op := range f.Ops {
		switch op.Kind {
		case OpClear:
			termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
		case OpSetCell:
			// termbox has no room for combining characters.
			if op.Width > 0 {
				termbox.SetCell(op.X, op.Y, op.Ch, termbox.ColorDefault, termbox.ColorDefault)
			}
		case OpMoveCursor:
			termbox.SetCursor(op.X, op.Y)
		case OpHideCursor:
			termbox.HideCursor()
		}
	}
	return termbox.Flush()
}

func (s *termboxScreen) PollKey() (KeyEvent, error) {
	return decodeTermboxEvent(termbox.PollEvent())
}

func (s *termboxScreen) Close() {
	termbox.Close()
}

// decodeTermboxEvent maps a termbox event onto the editor's key events.
func decodeTermboxEvent(ev termbox.Event) (KeyEvent, error) {
	switch ev.Type {
	case termbox.EventError:
		return KeyEvent{}, fmt.Errorf("terminal input: %w", ev.Err)
	case termbox.EventKey:
	default:
		return KeyEvent{Kind: EventNone}, nil
	}

	// Alt combinations are not bound to anything.
	if ev.Mod&termbox.ModAlt != 0 {
		return KeyEvent{Kind: EventNone}, nil
	}

	switch ev.Key {
	case termbox.KeyCtrlC, termbox.KeyCtrlQ:
		return KeyEvent{Kind: EventQuit}, nil
	case termbox.KeyCtrlS:
		return KeyEvent{Kind: EventSave}, nil
	case termbox.KeyArrowUp:
		return KeyEvent{Kind: EventUp}, nil
	case termbox.KeyArrowDown:
		return KeyEvent{Kind: EventDown}, nil
	case termbox.KeyArrowLeft:
		return KeyEvent{Kind: EventLeft}, nil
	case termbox.KeyArrowRight:
		return KeyEvent{Kind: EventRight}, nil
	case termbox.KeyEnter:
		return KeyEvent{Kind: EventChar, Ch: '\n'}, nil
	case termbox.KeySpace:
		return KeyEvent{Kind: EventChar, Ch: ' '}, nil
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return KeyEvent{Kind: EventEraseBackward}, nil
	case termbox.KeyDelete:
		return KeyEvent{Kind: EventEraseForward}, nil
	}

	// If a character key was pressed, insert the character.
	if ev.Ch != 0 {
		return KeyEvent{Kind: EventChar, Ch: ev.Ch}, nil
	}
	return KeyEvent{Kind: EventNone}, nil
}
