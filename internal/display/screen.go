package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"goblinwars/internal/combat"
)

var (
	tcellWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	tcellElf    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	tcellGoblin = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	tcellNotes  = tcell.StyleDefault.Dim(true)
	tcellTitle  = tcell.StyleDefault.Bold(true)
)

// Canvas is the part of tcell.Screen that Draw needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Draw paints a frame: title on the first line, the map from the third,
// status on the last line. Anything past the canvas edge is clipped.
func Draw(c Canvas, title string, f Frame) {
	w, h := c.Size()
	for y := range h {
		for x := range w {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	text(c, 0, 0, fmt.Sprintf("%s  round %d", title, f.Round), tcellTitle)

	for i, row := range f.Visible(h - 4) {
		y := i + 2
		for x, cell := range row.Cells[:min(len(row.Cells), w)] {
			c.SetContent(x, y, cell.Glyph, nil, tcellStyle(cell))
		}
		if row.Notes != "" {
			text(c, len(row.Cells)+3, y, row.Notes, tcellNotes)
		}
	}
	if h > 1 {
		text(c, 0, h-1, f.Status, tcell.StyleDefault)
	}
}

func text(c Canvas, x, y int, s string, st tcell.Style) {
	w, _ := c.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		c.SetContent(x, y, r, nil, st)
		x++
	}
}

func tcellStyle(c Cell) tcell.Style {
	switch {
	case c.Sprite && c.Species == combat.Elf:
		return tcellElf
	case c.Sprite:
		return tcellGoblin
	case c.Glyph == '#':
		return tcellWall
	}
	return tcell.StyleDefault
}

// Screen is the tcell viewer.
type Screen struct {
	screen  tcell.Screen
	title   string
	updates <-chan Update
	frame   Frame
}

func NewScreen(title string, updates <-chan Update) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenOn(screen, title, updates)
}

// NewScreenOn initializes an existing tcell screen, such as a simulation
// screen.
func NewScreenOn(screen tcell.Screen, title string, updates <-chan Update) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Screen{screen: screen, title: title, updates: updates}, nil
}

func (s *Screen) Frame() Frame { return s.frame }

// Run draws updates as they arrive until the user quits.
func (s *Screen) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	updates := s.updates
	s.draw()
	for {
		select {
		case ev := <-events:
			if !s.handleInput(ev) {
				return
			}
		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			s.frame = s.frame.Next(u)
		}
		s.draw()
	}
}

func (s *Screen) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// handleKey reports false when the viewer should exit.
func (s *Screen) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.frame.Scroll(-1)
	case tcell.KeyDown:
		s.frame.Scroll(1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'k':
			s.frame.Scroll(-1)
		case 'j':
			s.frame.Scroll(1)
		}
	}
	return true
}

func (s *Screen) draw() {
	s.screen.Clear()
	Draw(s.screen, s.title, s.frame)
	s.screen.Show()
}

func (s *Screen) Close() { s.screen.Fini() }
