//go:build ebiten

package app

import (
	"image/color"
	"log"

	"lifecanvas/internal/render"
	"lifecanvas/internal/session"
	"lifecanvas/internal/throttle"
	"lifecanvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the control panel right of the grid.
const HUDWidth = 220

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	inputs  *throttle.Throttle

	offColor color.Color
	gridW    int
	gridH    int
}

// New constructs a Game for the provided session.
func New(sess *session.Session, inputs *throttle.Throttle) *Game {
	g := sess.Grid()
	gp := render.NewGridPainter(g.Rows, g.Cols, sess.CellSize())
	w, h := gp.Size()
	return &Game{
		sess:     sess,
		painter:  gp,
		hud:      ui.NewHUD(sess, HUDWidth, inputs),
		inputs:   inputs,
		offColor: color.Black,
		gridW:    w,
		gridH:    h,
	}
}

// WindowSize returns the outer size of the game in pixels.
func (g *Game) WindowSize() (int, int) {
	return g.gridW + g.hud.Width(), g.gridH
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.apply(kc.cmd)
		}
	}

	g.hud.Update(g.gridW)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.hud.Contains(mx, my) && mx < g.gridW {
			g.sess.PaintAt(mx, my)
		}
	}

	wasRunning := g.sess.Running()
	if g.sess.Update() && wasRunning && !g.sess.Running() {
		log.Printf("life: population reached zero at generation %d, stopping", g.sess.Generation())
	}
	return nil
}

func (g *Game) apply(cmd session.Command) {
	if cmd.Throttled() && !g.inputs.Allow() {
		return
	}
	g.sess.Apply(cmd)
}

// Draw renders the grid and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.sess.Dirty() {
		snap := g.sess.Snapshot()
		g.painter.Repaint(snap.Grid, snap.Fill, g.offColor)
		g.sess.MarkClean()
	}
	g.painter.Draw(screen)
	g.hud.Draw(screen, g.gridW, g.gridH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

var keyCommands = []struct {
	key ebiten.Key
	cmd session.Command
}{
	{ebiten.KeySpace, session.CmdToggle},
	{ebiten.KeyR, session.CmdRandomize},
	{ebiten.KeyC, session.CmdClear},
	{ebiten.KeyN, session.CmdStep},
	{ebiten.KeyEqual, session.CmdFaster},
	{ebiten.KeyNumpadAdd, session.CmdFaster},
	{ebiten.KeyMinus, session.CmdSlower},
	{ebiten.KeyNumpadSubtract, session.CmdSlower},
	{ebiten.KeyBracketRight, session.CmdNextColor},
	{ebiten.KeyBracketLeft, session.CmdPrevColor},
}
