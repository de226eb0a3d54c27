// Package term runs a session on a character terminal. Each grid cell takes
// one terminal cell; the last line is a status bar.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifecanvas/internal/core"
	"lifecanvas/internal/session"
	"lifecanvas/internal/throttle"
)

// FrameInterval is how often the loop polls the session between events.
const FrameInterval = 10 * time.Millisecond

const liveRune = '█'

// GridSize returns the rows and columns available for the grid on a screen
// of w x h characters.
func GridSize(w, h int) (rows, cols int) {
	rows, cols = h-1, w
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}

// Frontend binds a session to a tcell screen.
type Frontend struct {
	screen tcell.Screen
	sess   *session.Session
	inputs *throttle.Throttle

	events chan tcell.Event
	logf   func(format string, args ...any)
}

// New creates a Frontend. The caller owns the screen's Init and Fini.
func New(screen tcell.Screen, sess *session.Session, inputs *throttle.Throttle) *Frontend {
	if inputs == nil {
		inputs = throttle.New(throttle.DefaultWindow)
	}
	return &Frontend{
		screen: screen,
		sess:   sess,
		inputs: inputs,
		events: make(chan tcell.Event, 16),
		logf:   func(string, ...any) {},
	}
}

// SetLogger routes lifecycle messages to logf.
func (f *Frontend) SetLogger(logf func(format string, args ...any)) {
	if logf != nil {
		f.logf = logf
	}
}

// Run processes events and ticks until ctx is cancelled or the user quits.
// Only the Run goroutine touches the session.
func (f *Frontend) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go f.pollEvents(done)

	f.screen.EnableMouse()
	f.Draw()

	frame := time.NewTicker(FrameInterval)
	defer frame.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-f.events:
			if !ok {
				return nil
			}
			if f.HandleEvent(ev) {
				return nil
			}
		case <-frame.C:
			wasRunning := f.sess.Running()
			if f.sess.Update() && wasRunning && !f.sess.Running() {
				f.logf("population reached zero at generation %d, stopping", f.sess.Generation())
			}
		}
		if f.sess.Dirty() {
			f.Draw()
		}
	}
}

func (f *Frontend) pollEvents(done <-chan struct{}) {
	defer close(f.events)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
			f.apply(runeCommand(ev.Rune()))
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			f.sess.Paint(y, x)
		}
	case *tcell.EventResize:
		f.screen.Sync()
		f.Draw()
	}
	return false
}

func (f *Frontend) apply(cmd session.Command) {
	if cmd == session.CmdNone {
		return
	}
	if cmd.Throttled() && !f.inputs.Allow() {
		return
	}
	f.sess.Apply(cmd)
}

func runeCommand(r rune) session.Command {
	switch r {
	case ' ':
		return session.CmdToggle
	case 'r':
		return session.CmdRandomize
	case 'c':
		return session.CmdClear
	case 'n':
		return session.CmdStep
	case '+', '=':
		return session.CmdFaster
	case '-':
		return session.CmdSlower
	case ']':
		return session.CmdNextColor
	case '[':
		return session.CmdPrevColor
	}
	return session.CmdNone
}

// Draw repaints the grid and status bar.
func (f *Frontend) Draw() {
	f.screen.Clear()
	snap := f.sess.Snapshot()
	fill := snap.Fill
	live := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fill.R), int32(fill.G), int32(fill.B)))
	g := snap.Grid
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col) != core.Alive {
				continue
			}
			f.screen.SetContent(col, row, liveRune, nil, live)
		}
	}
	f.drawStatus(g.Rows)
	f.sess.MarkClean()
	f.screen.Show()
}

func (f *Frontend) drawStatus(row int) {
	status := StatusLine(f.sess)
	style := tcell.StyleDefault.Reverse(true)
	w, _ := f.screen.Size()
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		f.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		f.screen.SetContent(col, row, ' ', nil, style)
	}
}

// StatusLine formats the readout shown under the grid.
func StatusLine(s *session.Session) string {
	return fmt.Sprintf(" Population: %d  Gen: %d  %s  %dms  %s  [space] start/stop [r]andom [c]lear [n]ext [+/-] speed [/] color [q]uit",
		s.Population(), s.Generation(), s.State(), s.Speed()/time.Millisecond, s.Color())
}
