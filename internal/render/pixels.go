// Package render turns resolved rays into screen geometry and pixel data
// without depending on a window toolkit.
package render

import "image/color"

// Palette holds the colours of a first-person frame.
type Palette struct {
	Ceiling color.RGBA
	Floor   color.RGBA
	Wall    color.RGBA
	// SideShade darkens walls hit on a vertical grid line.
	SideShade float64
}

// DefaultPalette is dark ceiling and floor with white walls.
func DefaultPalette() Palette {
	return Palette{
		Ceiling:   color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
		Floor:     color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
		Wall:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		SideShade: 0.75,
	}
}

// FillFrame writes an RGBA frame of w*h pixels into buf: ceiling above the
// horizon, floor below it and every strip stripW pixels wide on top.
func FillFrame(buf []byte, w, h int, strips []Strip, stripW int, pal Palette) {
	if len(buf) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		c := pal.Ceiling
		if y >= h/2 {
			c = pal.Floor
		}
		for x := 0; x < w; x++ {
			setPixel(buf, (y*w+x)*4, c)
		}
	}
	side := shade(pal.Wall, pal.SideShade)
	for _, s := range strips {
		c := pal.Wall
		if s.Vertical {
			c = side
		}
		for x := s.Column; x < s.Column+stripW && x < w; x++ {
			if x < 0 {
				continue
			}
			for y := s.Top; y < s.Bottom; y++ {
				setPixel(buf, (y*w+x)*4, c)
			}
		}
	}
}

// FillCells converts 0/1 occupancy cells into RGBA pixels in buf, one pixel
// per cell.
func FillCells(buf []byte, cells []uint8, wall, open color.Color) {
	rOn, gOn, bOn, aOn := wall.RGBA()
	rOff, gOff, bOff, aOff := open.RGBA()
	for i, c := range cells {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

func setPixel(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func shade(c color.RGBA, f float64) color.RGBA {
	if f <= 0 || f > 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
