// Package session holds the state of one running Game of Life: the current
// grid, the STOPPED/RUNNING lifecycle, tick speed, fill color and the last
// reported population. Front ends drive it from their own event loop; a
// Session is not safe for concurrent use.
package session

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/life"
	"lifecanvas/internal/render"
)

// State is the lifecycle of a session.
type State int

const (
	// Stopped sessions only change through explicit operations.
	Stopped State = iota
	// Running sessions tick on every elapsed interval.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// PopulationMode selects which generation the population readout counts.
type PopulationMode int

const (
	// PreTick reports the live cells of the generation that was just
	// evaluated, one generation behind the grid on screen.
	PreTick PopulationMode = iota
	// Rendered reports the live cells of the grid now on screen.
	Rendered
)

func (m PopulationMode) String() string {
	if m == Rendered {
		return "rendered"
	}
	return "pretick"
}

// ParsePopulationMode accepts "pretick" and "rendered".
func ParsePopulationMode(s string) (PopulationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretick", "pre":
		return PreTick, nil
	case "rendered", "post":
		return Rendered, nil
	}
	return PreTick, fmt.Errorf("unknown population mode %q", s)
}

// MinSpeed is the shortest accepted tick interval.
const MinSpeed = time.Millisecond

// Parameter keys exposed on the control surface.
const (
	KeySpeed      = "speed_ms"
	KeyColor      = "color"
	KeyPopulation = "population"
	KeyState      = "state"
	KeyGeneration = "generation"
)

// Options configures a new Session.
type Options struct {
	Rows, Cols int
	CellSize   int
	Speed      time.Duration
	Color      string
	Seed       int64
	Mode       PopulationMode
	Randomize  bool

	// Now overrides the scheduling clock.
	Now func() time.Time
}

// Snapshot is an immutable view of a session for renderers.
type Snapshot struct {
	Grid       *core.Grid
	Population int
	Generation int
	State      State
	Speed      time.Duration
	Color      string
	Fill       color.RGBA
}

// Session is the explicit state of one simulation.
type Session struct {
	engine *life.Engine
	grid   *core.Grid
	clock  *core.FixedStep

	state      State
	mode       PopulationMode
	cellPx     int
	color      string
	fill       color.RGBA
	population int
	generation int
	dirty      bool
}

// New builds a stopped Session. An invalid color falls back to the default.
func New(opts Options) *Session {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Speed <= 0 {
		opts.Speed = core.DefaultInterval
	}
	s := &Session{
		engine: life.New(opts.Rows, opts.Cols, opts.Seed),
		clock:  core.NewFixedStepWithClock(opts.Speed, opts.Now),
		mode:   opts.Mode,
		cellPx: opts.CellSize,
	}
	if err := s.SetColor(opts.Color); err != nil {
		_ = s.SetColor(render.DefaultColor)
	}
	s.replace(s.engine.CreateGrid(opts.Randomize))
	return s
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Running reports whether the session is ticking.
func (s *Session) Running() bool { return s.state == Running }

// Grid returns the live grid. Callers must not retain it across operations.
func (s *Session) Grid() *core.Grid { return s.grid }

// Population returns the last reported population.
func (s *Session) Population() int { return s.population }

// Generation counts ticks since the grid was last replaced by Clear or Randomize.
func (s *Session) Generation() int { return s.generation }

// Speed returns the tick interval.
func (s *Session) Speed() time.Duration { return s.clock.Interval() }

// Color returns the fill color string.
func (s *Session) Color() string { return s.color }

// Fill returns the parsed fill color.
func (s *Session) Fill() color.RGBA { return s.fill }

// CellSize returns the pixel size of one cell.
func (s *Session) CellSize() int { return s.cellPx }

// Mode returns the population reporting mode.
func (s *Session) Mode() PopulationMode { return s.mode }

// Start begins ticking. The first tick is due one interval from now.
func (s *Session) Start() {
	if s.state == Running {
		return
	}
	s.state = Running
	s.clock.Reset()
}

// Stop halts future ticks.
func (s *Session) Stop() {
	s.state = Stopped
}

// Toggle flips between Running and Stopped.
func (s *Session) Toggle() {
	if s.state == Running {
		s.Stop()
		return
	}
	s.Start()
}

// Update applies every tick that has come due while running and reports
// whether at least one happened. Ticking ends early if the session stops.
func (s *Session) Update() bool {
	if s.state != Running {
		return false
	}
	due := s.clock.DueSteps()
	for i := 0; i < due && s.state == Running; i++ {
		s.Step()
	}
	return due > 0
}

// Step applies one tick regardless of state. When the reported population is
// zero a running session stops; stopped reports that transition.
func (s *Session) Step() (population int, stopped bool) {
	next, pre := life.Tick(s.grid)
	s.grid = next
	s.generation++
	s.dirty = true
	s.population = pre
	if s.mode == Rendered {
		s.population = next.Population()
	}
	if s.population == 0 && s.state == Running {
		s.state = Stopped
		stopped = true
	}
	return s.population, stopped
}

// Randomize replaces the grid with a random one.
func (s *Session) Randomize() {
	s.replace(s.engine.CreateGrid(true))
}

// Clear replaces the grid with an empty one.
func (s *Session) Clear() {
	s.replace(s.engine.CreateGrid(false))
}

func (s *Session) replace(g *core.Grid) {
	s.grid = g
	s.generation = 0
	s.population = g.Population()
	s.dirty = true
}

// Paint sets (row, col) alive. Out-of-range cells are ignored.
func (s *Session) Paint(row, col int) {
	if !s.grid.InBounds(row, col) {
		return
	}
	life.SetCell(s.grid, row, col, core.Alive)
	s.dirty = true
}

// PaintAt paints the cell under pixel (x, y) of the drawing surface.
func (s *Session) PaintAt(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	s.Paint(y/s.cellPx, x/s.cellPx)
}

// SetSpeed changes the tick interval. A pending tick is dropped and the next
// one is scheduled a full new interval from now; the state is unchanged.
func (s *Session) SetSpeed(d time.Duration) {
	if d < MinSpeed {
		d = MinSpeed
	}
	s.clock.SetInterval(d)
}

// SetColor changes the live cell fill. Invalid colors are rejected and the
// current color is kept.
func (s *Session) SetColor(c string) error {
	fill, err := render.ParseColor(c)
	if err != nil {
		return err
	}
	s.color = strings.TrimSpace(c)
	s.fill = fill
	s.dirty = true
	return nil
}

// Dirty reports whether the grid or its appearance changed since MarkClean.
func (s *Session) Dirty() bool { return s.dirty }

// MarkClean records that a renderer has drawn the current state.
func (s *Session) MarkClean() { s.dirty = false }

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:       s.grid.Clone(),
		Population: s.population,
		Generation: s.generation,
		State:      s.state,
		Speed:      s.Speed(),
		Color:      s.color,
		Fill:       s.fill,
	}
}

// Parameters reports the control surface values.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: KeyPopulation, Label: "Population", Type: core.ParamTypeText, Value: strconv.Itoa(s.population)},
		{Key: KeyGeneration, Label: "Generation", Type: core.ParamTypeText, Value: strconv.Itoa(s.generation)},
		{Key: KeyState, Label: "State", Type: core.ParamTypeText, Value: s.state.String()},
		{Key: KeySpeed, Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(int(s.Speed() / time.Millisecond))},
		{Key: KeyColor, Label: "Color", Type: core.ParamTypeColor, Value: s.color},
	}}
}

// ParameterControls lists the adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeySpeed, Label: "Speed (ms)", Type: core.ParamTypeInt, Step: 10, Min: 1, Max: 2000, HasMin: true, HasMax: true},
		{Key: KeyColor, Label: "Color", Type: core.ParamTypeColor, Step: 1, Min: 0, Max: len(render.Palette) - 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates speed (milliseconds) or color (palette index).
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case KeySpeed:
		if value < 1 {
			return false
		}
		s.SetSpeed(time.Duration(value) * time.Millisecond)
		return true
	case KeyColor:
		if value < 0 || value >= len(render.Palette) {
			return false
		}
		return s.SetColor(render.Palette[value]) == nil
	}
	return false
}
