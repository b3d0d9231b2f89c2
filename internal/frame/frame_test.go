package frame

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gridcaster/internal/body"
	"gridcaster/internal/core"
)

func setup(t *testing.T, cfg Config) *Orchestrator {
	t.Helper()
	g, err := core.NewGrid(16, [][]uint8{
		{1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 0, 1, 0, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	b, err := body.New(g, core.Point{X: 56, Y: 40}, math.Pi/3, 20, math.Pi)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	o, err := New(g, b, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return o
}

func TestSweepAnglesSpanFieldOfView(t *testing.T) {
	cfg := Config{FOV: math.Pi / 3, Columns: 90, Workers: 1}
	o := setup(t, cfg)
	rays, err := o.Sweep(o.Body())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(rays) != cfg.Columns {
		t.Fatalf("len(rays) = %d, want %d", len(rays), cfg.Columns)
	}
	heading := o.Body().Heading()
	step := cfg.FOV / float64(cfg.Columns)
	for i, r := range rays {
		want := core.NormalizeAngle(heading - cfg.FOV/2 + float64(i)*step)
		if math.Abs(r.Angle-want) > 1e-12 {
			t.Fatalf("column %d angle = %g, want %g", i, r.Angle, want)
		}
	}
	angles := o.Angles(heading)
	if math.Abs(angles[0]-(heading-cfg.FOV/2)) > 1e-12 {
		t.Fatalf("first angle = %g, want heading-FOV/2", angles[0])
	}
	last := angles[len(angles)-1]
	if last >= heading+cfg.FOV/2 || math.Abs(last+step-(heading+cfg.FOV/2)) > 1e-12 {
		t.Fatalf("last angle = %g, want one step below heading+FOV/2", last)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	o := setup(t, Config{FOV: math.Pi / 3, Columns: 64, Workers: 1})
	first, err := o.Sweep(o.Body())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	second, err := o.Sweep(o.Body())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two sweeps of an unchanged pose differ")
	}
	first[0].Distance = -1
	if second[0].Distance == -1 {
		t.Fatal("sweeps share a backing array")
	}
}

func TestParallelSweepMatchesSequential(t *testing.T) {
	seq := setup(t, Config{FOV: math.Pi / 2.5, Columns: 333, Workers: 1})
	par := setup(t, Config{FOV: math.Pi / 2.5, Columns: 333, Workers: 7})
	want, err := seq.Sweep(seq.Body())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	got, err := par.Sweep(par.Body())
	if err != nil {
		t.Fatalf("parallel Sweep: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatal("parallel sweep differs from sequential sweep")
	}
}

func TestTickAdvancesThenSweeps(t *testing.T) {
	o := setup(t, Config{FOV: math.Pi / 3, Columns: 8, Workers: 1})
	b := o.Body()
	b.SetTurn(body.TurnRight)
	before := b.Heading()
	f, err := o.Tick(0.25)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	rays := f.Rays
	if f.Blocked {
		t.Fatal("turning in place is not a blocked move")
	}
	if f.Pose != b.Snapshot() {
		t.Fatalf("frame pose = %+v, want %+v", f.Pose, b.Snapshot())
	}
	if math.Abs(b.Heading()-(before+math.Pi/4)) > 1e-12 {
		t.Fatalf("heading = %g, want %g", b.Heading(), before+math.Pi/4)
	}
	want := core.NormalizeAngle(b.Heading() - math.Pi/6)
	if math.Abs(rays[0].Angle-want) > 1e-12 {
		t.Fatalf("first ray angle = %g, want %g from the advanced heading", rays[0].Angle, want)
	}
}

func TestTickPropagatesErrors(t *testing.T) {
	o := setup(t, Config{FOV: math.Pi / 3, Columns: 8})
	f, err := o.Tick(math.NaN())
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("Tick(NaN) err = %v", err)
	}
	if f.Rays != nil {
		t.Fatal("failed tick must not return rays")
	}
}

func TestTickReportsBlockedMove(t *testing.T) {
	o := setup(t, Config{FOV: math.Pi / 3, Columns: 4})
	b := o.Body()
	// From (56, 40) facing π/3, a 40 unit step lands at (76, 74.6): the
	// bottom wall row.
	b.SetMove(body.MoveForward)
	f, err := o.Tick(2)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !f.Blocked {
		t.Fatalf("expected blocked move, pose %+v", f.Pose)
	}
	if len(f.Rays) != 4 {
		t.Fatalf("blocked tick still sweeps: got %d rays", len(f.Rays))
	}
}

func TestTickStationaryMoveIsNotBlocked(t *testing.T) {
	g, err := core.NewGrid(16, [][]uint8{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	b, err := body.New(g, core.Point{X: 24, Y: 24}, 0, 0, math.Pi)
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	o, err := New(g, b, Config{FOV: math.Pi / 3, Columns: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.SetMove(body.MoveForward)
	f, err := o.Tick(1)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if f.Blocked {
		t.Fatal("zero-speed move reported as blocked")
	}
}

func TestNewValidation(t *testing.T) {
	o := setup(t, DefaultConfig())
	bad := []Config{
		{FOV: 0, Columns: 10},
		{FOV: math.Pi, Columns: 10},
		{FOV: math.NaN(), Columns: 10},
		{FOV: 1, Columns: 0},
	}
	for _, cfg := range bad {
		if _, err := New(o.Grid(), o.Body(), cfg); !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("New(%+v) err = %v", cfg, err)
		}
	}
	if _, err := New(nil, o.Body(), DefaultConfig()); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("New(nil grid) err = %v", err)
	}
	if _, err := o.Sweep(nil); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("Sweep(nil) err = %v", err)
	}
	if o.Config().Workers != 1 {
		t.Fatalf("workers = %d, want default 1", o.Config().Workers)
	}
}
