package term

import (
	"fmt"
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	"gridcaster/internal/render"

	"github.com/gdamore/tcell/v2"
)

var (
	skyStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	wallStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorLightGray)
	floorStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkSlateBlue)
	mapStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	bodyStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
)

// cellWriter is the part of tcell.Screen the renderer draws through.
type cellWriter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// drawView fills a w x h character screen with the projected walls.
// Walls at or beyond maxDist fade to blank.
func drawView(s cellWriter, w, h int, strips []render.Strip, maxDist float64) {
	for x := 0; x < w; x++ {
		var st render.Strip
		hasStrip := x < len(strips)
		if hasStrip {
			st = strips[x]
		}
		for y := 0; y < h; y++ {
			switch {
			case hasStrip && y >= st.Top && y < st.Bottom:
				s.SetContent(x, y, render.WallRune(st.Distance, maxDist, st.Vertical), nil, wallStyle)
			case y >= h/2:
				s.SetContent(x, y, render.FloorRune(y, h), nil, floorStyle)
			default:
				s.SetContent(x, y, ' ', nil, skyStyle)
			}
		}
	}
}

// drawMap prints the grid one character per cell from the top-left corner
// with the body marked by an arrow for its heading.
func drawMap(s cellWriter, grid *core.Grid, f frame.Frame) {
	size := grid.Size()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			v, _ := grid.Cell(col, row)
			r := '.'
			if v != 0 {
				r = '#'
			}
			s.SetContent(col, row+1, r, nil, mapStyle)
		}
	}
	tile := grid.TileSize()
	col := int(f.Pose.Position.X / tile)
	row := int(f.Pose.Position.Y / tile)
	s.SetContent(col, row+1, headingRune(f.Pose.Heading), nil, bodyStyle)
}

// headingRune picks the arrow closest to heading. Y grows downward.
func headingRune(heading float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	i := int(math.Round(core.NormalizeAngle(heading)/(math.Pi/4))) % len(arrows)
	return arrows[i]
}

// drawStatus writes one line of text on row 0.
func drawStatus(s cellWriter, w int, f frame.Frame) {
	line := fmt.Sprintf(" x=%.1f y=%.1f a=%.0f° ", f.Pose.Position.X, f.Pose.Position.Y, f.Pose.Heading*180/math.Pi)
	if f.Blocked {
		line += "bump "
	}
	x := 0
	for _, r := range line {
		if x >= w {
			return
		}
		s.SetContent(x, 0, r, nil, mapStyle.Reverse(true))
		x++
	}
}
