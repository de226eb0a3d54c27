package session

import (
	"time"

	"lifecanvas/internal/render"
)

// Command is a control-surface action a front end can forward to a session.
type Command int

const (
	CmdNone Command = iota
	CmdToggle
	CmdRandomize
	CmdClear
	CmdStep
	CmdFaster
	CmdSlower
	CmdNextColor
	CmdPrevColor
)

// SpeedStep is how much CmdFaster and CmdSlower change the interval.
const SpeedStep = 10 * time.Millisecond

// Throttled reports whether the command changes speed or color, the inputs
// front ends rate-limit.
func (c Command) Throttled() bool {
	switch c {
	case CmdFaster, CmdSlower, CmdNextColor, CmdPrevColor:
		return true
	}
	return false
}

// Apply runs cmd against the session.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CmdToggle:
		s.Toggle()
	case CmdRandomize:
		s.Randomize()
	case CmdClear:
		s.Clear()
	case CmdStep:
		s.Step()
	case CmdFaster:
		s.SetSpeed(s.Speed() - SpeedStep)
	case CmdSlower:
		s.SetSpeed(s.Speed() + SpeedStep)
	case CmdNextColor:
		_ = s.SetColor(render.CycleColor(s.color, 1))
	case CmdPrevColor:
		_ = s.SetColor(render.CycleColor(s.color, -1))
	}
}
