package main

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

type tcellScreen struct {
	screen tcell.Screen
}

func newTcellScreen() (*tcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init tcell screen: %w", err)
	}
	return &tcellScreen{screen: screen}, nil
}

func (s *tcellScreen) Size() (int, int) {
	return s.screen.Size()
}

func (s *tcellScreen) Show(f *Frame) error {
	for _, op := range f.Ops {
		switch op.Kind {
		case OpClear:
			s.screen.Clear()
		case OpSetCell:
			if op.Width == 0 {
				// Attach combining characters to the glyph already in the cell.
				mainc, combc, style, _ := s.screen.GetContent(op.X, op.Y)
				s.screen.SetContent(op.X, op.Y, mainc, append(combc, op.Ch), style)
				continue
			}
			s.screen.SetContent(op.X, op.Y, op.Ch, nil, tcell.StyleDefault)
		case OpMoveCursor:
			s.screen.ShowCursor(op.X, op.Y)
		case OpHideCursor:
			s.screen.HideCursor()
		}
	}
	s.screen.Show()
	return nil
}

func (s *tcellScreen) PollKey() (KeyEvent, error) {
	ev := s.screen.PollEvent()
	if ev == nil {
		// The screen was finalized underneath us.
		return KeyEvent{Kind: EventQuit}, nil
	}
	return decodeTcellEvent(ev)
}

func (s *tcellScreen) Close() {
	s.screen.Fini()
}

// decodeTcellEvent maps a tcell event onto the editor's key events.
func decodeTcellEvent(ev tcell.Event) (KeyEvent, error) {
	switch tev := ev.(type) {
	case *tcell.EventError:
		return KeyEvent{}, fmt.Errorf("terminal input: %w", tev)
	case *tcell.EventKey:
		// Alt combinations are not bound to anything.
		if tev.Modifiers()&tcell.ModAlt != 0 {
			return KeyEvent{Kind: EventNone}, nil
		}
		switch tev.Key() {
		case tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return KeyEvent{Kind: EventQuit}, nil
		case tcell.KeyCtrlS:
			return KeyEvent{Kind: EventSave}, nil
		case tcell.KeyUp:
			return KeyEvent{Kind: EventUp}, nil
		case tcell.KeyDown:
			return KeyEvent{Kind: EventDown}, nil
		case tcell.KeyLeft:
			return KeyEvent{Kind: EventLeft}, nil
		case tcell.KeyRight:
			return KeyEvent{Kind: EventRight}, nil
		case tcell.KeyEnter:
			return KeyEvent{Kind: EventChar, Ch: '\n'}, nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return KeyEvent{Kind: EventEraseBackward}, nil
		case tcell.KeyDelete:
			return KeyEvent{Kind: EventEraseForward}, nil
		case tcell.KeyRune:
			if tev.Modifiers()&tcell.ModCtrl != 0 {
				// Some terminals report Ctrl+letter as a modified rune.
				switch unicode.ToLower(tev.Rune()) {
				case 'c', 'q':
					return KeyEvent{Kind: EventQuit}, nil
				case 's':
					return KeyEvent{Kind: EventSave}, nil
				}
				return KeyEvent{Kind: EventNone}, nil
			}
			return KeyEvent{Kind: EventChar, Ch: tev.Rune()}, nil
		}
	}
	return KeyEvent{Kind: EventNone}, nil
}
