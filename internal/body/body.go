// Package body holds the viewer's kinematic state and advances it against an
// occupancy grid.
package body

import (
	"fmt"
	"math"

	"gridcaster/internal/core"
)

// TurnIntent is the rotation the input layer requests each tick.
type TurnIntent int

const (
	TurnLeft  TurnIntent = -1
	TurnNone  TurnIntent = 0
	TurnRight TurnIntent = 1
)

// MoveIntent is the translation the input layer requests each tick.
type MoveIntent int

const (
	MoveBackward MoveIntent = -1
	MoveNone     MoveIntent = 0
	MoveForward  MoveIntent = 1
)

// Collider answers point-in-wall queries. *core.Grid implements it.
type Collider interface {
	IsOccupied(p core.Point) (bool, error)
}

// Pose is a read-only copy of the body's position and heading.
type Pose struct {
	Position core.Point
	Heading  float64
}

// Body is the viewer. Position only changes when the destination of a move
// is open floor; heading changes on every tick with a turn intent.
type Body struct {
	pos       core.Point
	heading   float64
	turn      TurnIntent
	move      MoveIntent
	speed     float64
	turnSpeed float64
	// blocked records whether the last Advance hit a wall.
	blocked bool

	grid Collider
}

// New places a body at pos facing heading. speed is in world units per
// second, turnSpeed in radians per second.
func New(grid Collider, pos core.Point, heading, speed, turnSpeed float64) (*Body, error) {
	if grid == nil {
		return nil, fmt.Errorf("body: nil grid: %w", core.ErrInvalidInput)
	}
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("body: spawn: %w", err)
	}
	if !core.Finite(heading) || !core.Finite(speed) || !core.Finite(turnSpeed) {
		return nil, fmt.Errorf("body: heading %g speed %g turn speed %g: %w", heading, speed, turnSpeed, core.ErrInvalidInput)
	}
	return &Body{
		pos:       pos,
		heading:   core.NormalizeAngle(heading),
		speed:     speed,
		turnSpeed: turnSpeed,
		grid:      grid,
	}, nil
}

// FromLevel spawns a body at the level's spawn pose.
func FromLevel(lvl *core.Level) (*Body, error) {
	if lvl == nil || lvl.Grid == nil {
		return nil, fmt.Errorf("body: nil level: %w", core.ErrInvalidInput)
	}
	return New(lvl.Grid, lvl.Spawn, lvl.Heading, lvl.Speed, lvl.TurnSpeed)
}

// Position returns the current position.
func (b *Body) Position() core.Point { return b.pos }

// Heading returns the current heading in [0, 2π).
func (b *Body) Heading() float64 { return b.heading }

// Snapshot returns the pose a renderer draws the viewer marker from.
func (b *Body) Snapshot() Pose {
	return Pose{Position: b.pos, Heading: b.heading}
}

// Turn returns the current turn intent.
func (b *Body) Turn() TurnIntent { return b.turn }

// Move returns the current move intent.
func (b *Body) Move() MoveIntent { return b.move }

// Blocked reports whether the destination of the last Advance was inside a
// wall. A move with zero speed or zero dt is never blocked.
func (b *Body) Blocked() bool { return b.blocked }

// SetTurn records the rotation applied on the next Advance.
func (b *Body) SetTurn(t TurnIntent) {
	b.turn = TurnIntent(clampIntent(int(t)))
}

// SetMove records the translation applied on the next Advance.
func (b *Body) SetMove(m MoveIntent) {
	b.move = MoveIntent(clampIntent(int(m)))
}

// Advance applies the current intents over dt seconds. The candidate
// position is tested only at its destination, so a very large step can pass
// through a wall one tile thick. moved reports whether the position changed.
func (b *Body) Advance(dt float64) (moved bool, err error) {
	if !core.Finite(dt) || dt < 0 {
		return false, fmt.Errorf("body: dt %g: %w", dt, core.ErrInvalidInput)
	}
	heading := b.heading + float64(b.turn)*b.turnSpeed*dt
	step := float64(b.move) * b.speed * dt
	candidate := b.pos.Add(math.Cos(heading)*step, math.Sin(heading)*step)

	blocked, err := b.grid.IsOccupied(candidate)
	if err != nil {
		return false, fmt.Errorf("body: advance: %w", err)
	}
	b.heading = core.NormalizeAngle(heading)
	b.blocked = blocked && candidate != b.pos
	if blocked || candidate == b.pos {
		return false, nil
	}
	b.pos = candidate
	return true, nil
}

// Parameters describes the body's speeds and pose for the HUD.
func (b *Body) Parameters() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "body",
		Params: []core.Parameter{
			core.FloatParam("x", "x", b.pos.X),
			core.FloatParam("y", "y", b.pos.Y),
			core.FloatParam("heading", "heading", b.heading*180/math.Pi),
			core.FloatParam("speed", "speed", b.speed),
			core.FloatParam("turn_speed", "turn", b.turnSpeed),
		},
	}
}

func clampIntent(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
