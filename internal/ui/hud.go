//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/frame"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding     = 8
	hudLineSpacing = 16
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD prints the pose and the current settings in the bottom-left corner.
type HUD struct {
	src   parameterProvider
	show  bool
	lines []string
}

// NewHUD constructs a HUD reading settings from src.
func NewHUD(src parameterProvider) *HUD {
	return &HUD{src: src}
}

// Update toggles visibility with the H key and refreshes the text.
func (h *HUD) Update(f frame.Frame) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
	if !h.show {
		return
	}
	h.lines = h.lines[:0]
	pose := fmt.Sprintf("pos=(%.1f, %.1f) heading=%.1f°", f.Pose.Position.X, f.Pose.Position.Y, f.Pose.Heading*180/math.Pi)
	if f.Blocked {
		pose += " blocked"
	}
	h.lines = append(h.lines, pose)
	if h.src != nil {
		h.lines = append(h.lines, h.src.Parameters().Lines()...)
	}
}

// Draw renders the HUD text onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.show {
		return
	}
	face := basicfont.Face7x13
	bottom := screen.Bounds().Dy() - hudPadding
	for i := len(h.lines) - 1; i >= 0; i-- {
		text.Draw(screen, h.lines[i], face, hudPadding+1, bottom+1, color.Black)
		text.Draw(screen, h.lines[i], face, hudPadding, bottom, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bottom -= hudLineSpacing
	}
}
