//go:build !ebiten

package ui

import "gridcaster/internal/render"

// FramePainter is a no-op placeholder for headless builds.
type FramePainter struct{}

// NewFramePainter returns nil in the headless build.
func NewFramePainter(int, int, render.Palette) *FramePainter { return nil }

// Blit is a no-op in the headless build.
func (fp *FramePainter) Blit(any, []render.Strip, int) {}

// Size returns zeros in the headless build.
func (fp *FramePainter) Size() (int, int) { return 0, 0 }
