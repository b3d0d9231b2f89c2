package term

import (
	"context"
	"io"
	"log"
	"math"
	"testing"
	"time"

	"gridcaster/internal/app"
	"gridcaster/internal/body"
	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	_ "gridcaster/internal/levels"
	"gridcaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

type recordingScreen struct {
	w, h  int
	cells []rune
}

func newRecordingScreen(w, h int) *recordingScreen {
	return &recordingScreen{w: w, h: h, cells: make([]rune, w*h)}
}

func (r *recordingScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.cells[y*r.w+x] = mainc
}

func (r *recordingScreen) at(x, y int) rune { return r.cells[y*r.w+x] }

func TestKeyLatchExpires(t *testing.T) {
	start := time.Unix(100, 0)
	k := NewKeyLatch(0)
	k.Turn(body.TurnLeft, start)
	k.Move(body.MoveForward, start.Add(100*time.Millisecond))

	turn, move := k.Intents(start.Add(DefaultHold - time.Millisecond))
	if turn != body.TurnLeft || move != body.MoveForward {
		t.Fatalf("intents = %d,%d, want held", turn, move)
	}
	turn, move = k.Intents(start.Add(DefaultHold))
	if turn != body.TurnNone || move != body.MoveForward {
		t.Fatalf("intents = %d,%d, want turn expired only", turn, move)
	}
	k.Release()
	if turn, move = k.Intents(start); turn != body.TurnNone || move != body.MoveNone {
		t.Fatalf("intents after release = %d,%d", turn, move)
	}
}

func TestDrawViewLayersColumn(t *testing.T) {
	s := newRecordingScreen(2, 10)
	strips := []render.Strip{{Column: 0, Top: 3, Bottom: 7, Distance: 1}}
	drawView(s, 2, 10, strips, 100)

	if got := s.at(0, 1); got != ' ' {
		t.Fatalf("sky = %q", got)
	}
	for y := 3; y < 7; y++ {
		if got := s.at(0, y); got != '█' {
			t.Fatalf("wall row %d = %q", y, got)
		}
	}
	if got := s.at(0, 9); got != '#' {
		t.Fatalf("bottom floor = %q", got)
	}
	// No strip for column 1: sky then floor.
	if got := s.at(1, 4); got != ' ' {
		t.Fatalf("column without strip row 4 = %q", got)
	}
	if got, want := s.at(1, 9), render.FloorRune(9, 10); got != want {
		t.Fatalf("column without strip floor = %q, want %q", got, want)
	}
}

func TestHeadingRune(t *testing.T) {
	cases := map[float64]rune{
		0:               '→',
		math.Pi / 2:     '↓',
		math.Pi:         '←',
		3 * math.Pi / 2: '↑',
		-0.1:            '→',
		math.Pi / 4:     '↘',
	}
	for a, want := range cases {
		if got := headingRune(a); got != want {
			t.Fatalf("headingRune(%g) = %q, want %q", a, got, want)
		}
	}
}

func TestDrawMapMarksBody(t *testing.T) {
	grid, err := core.NewGrid(10, [][]uint8{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	s := newRecordingScreen(3, 4)
	f := frame.Frame{Pose: body.Pose{Position: core.Point{X: 15, Y: 15}, Heading: math.Pi}}
	drawMap(s, grid, f)
	if got := s.at(0, 1); got != '#' {
		t.Fatalf("wall cell = %q", got)
	}
	if got := s.at(1, 2); got != '←' {
		t.Fatalf("body cell = %q", got)
	}
}

func TestRunnerKeysAndResize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	cfg := app.NewConfig()
	cfg.Strip = 4
	r, err := NewRunner(screen, cfg, nil, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if cols := r.scene.View.Config().Columns; cols != 80 {
		t.Fatalf("columns = %d, want one per character", cols)
	}

	now := time.Unix(0, 0)
	if r.handleRune('w', now) {
		t.Fatal("w quit")
	}
	if _, move := r.latch.Intents(now); move != body.MoveForward {
		t.Fatalf("move = %d", move)
	}
	r.handleRune('f', now)
	if !r.scene.Proj.Fisheye {
		t.Fatal("f did not toggle fisheye")
	}
	if !r.handleRune('q', now) {
		t.Fatal("q did not quit")
	}

	start := r.scene.View.Body().Position()
	r.tick(now)
	if r.last.Rays == nil {
		t.Fatal("tick produced no rays")
	}
	if r.scene.View.Body().Position() == start {
		t.Fatal("held forward key did not move the body")
	}

	screen.SetSize(40, 12)
	if err := r.resize(); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if cols := r.scene.View.Config().Columns; cols != 40 {
		t.Fatalf("columns after resize = %d", cols)
	}
	if r.scene.View.Body().Position() == start || !r.scene.Proj.Fisheye {
		t.Fatal("resize lost body or fisheye state")
	}
}

type endlessPoller struct{}

func (endlessPoller) PollEvent() tcell.Event { return tcell.NewEventInterrupt(nil) }

func TestPollEventsStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event, 2)
	done := make(chan struct{})
	go func() {
		pollEvents(ctx, endlessPoller{}, events)
		close(done)
	}()

	// Let the buffer fill; nobody reads it after this.
	<-events
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller still blocked on a full channel after cancel")
	}
	for range events {
	}
}
