//go:build ebiten

package ui

import (
	"gridcaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads rendered wall strips into a single RGBA image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  render.Palette
}

// NewFramePainter allocates a painter for a w*h screen.
func NewFramePainter(w, h int, pal render.Palette) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h), pal: pal}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit paints the strips into the buffer and draws the image onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, strips []render.Strip, stripW int) {
	render.FillFrame(fp.buf, fp.w, fp.h, strips, stripW, fp.pal)
	fp.img.WritePixels(fp.buf)
	dst.DrawImage(fp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
