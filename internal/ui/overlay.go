//go:build ebiten

package ui

import (
	"image/color"

	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	"gridcaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	minimapWall   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	minimapOpen   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	minimapRay    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x80}
	minimapBody   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	minimapMargin = 8.0
)

// Overlay draws the top-down minimap: grid cells, every ray and the body.
type Overlay struct {
	grid *core.Grid
	mm   render.Minimap
	show bool

	cellImg *ebiten.Image
	cellBuf []byte
}

// NewOverlay constructs a minimap overlay. A non-positive scale hides it.
func NewOverlay(grid *core.Grid, scale float64) *Overlay {
	o := &Overlay{
		grid: grid,
		mm:   render.Minimap{Scale: scale, OffsetX: minimapMargin, OffsetY: minimapMargin},
		show: scale > 0,
	}
	size := grid.Size()
	o.cellBuf = make([]byte, 4*size.W*size.H)
	render.FillCells(o.cellBuf, grid.Cells(), minimapWall, minimapOpen)
	o.cellImg = ebiten.NewImage(size.W, size.H)
	o.cellImg.WritePixels(o.cellBuf)
	return o
}

// Update toggles visibility with the M key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && o.mm.Scale > 0 {
		o.show = !o.show
	}
}

// Draw renders the minimap for f onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, f frame.Frame) {
	if !o.show {
		return
	}
	cell := o.mm.Length(o.grid.TileSize())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	op.GeoM.Translate(o.mm.OffsetX, o.mm.OffsetY)
	screen.DrawImage(o.cellImg, op)

	w, h := o.grid.Bounds()
	vector.StrokeRect(screen, float32(o.mm.OffsetX), float32(o.mm.OffsetY), o.mm.Length(w), o.mm.Length(h), 1, minimapWall, false)

	px, py := o.mm.Point(f.Pose.Position)
	for _, r := range f.Rays {
		hx, hy := o.mm.Point(r.Hit)
		vector.StrokeLine(screen, px, py, hx, hy, 1, minimapRay, false)
	}
	vector.DrawFilledCircle(screen, px, py, max(o.mm.Length(o.grid.TileSize()/6), 2), minimapBody, true)
}
