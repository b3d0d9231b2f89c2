package render

// shadeRunes go from nearest to farthest.
var shadeRunes = []rune{'█', '▓', '▒', '░'}

// WallRune picks a block character for a wall at dist. Walls at or beyond
// maxDist render blank.
func WallRune(dist, maxDist float64, vertical bool) rune {
	if maxDist <= 0 || dist >= maxDist {
		return ' '
	}
	idx := int(dist / maxDist * float64(len(shadeRunes)))
	if vertical && idx < len(shadeRunes)-1 {
		idx++
	}
	return shadeRunes[min(idx, len(shadeRunes)-1)]
}

// FloorRune shades floor rows by how far below the horizon they are.
// row counts from the top of a screen h rows tall.
func FloorRune(row, h int) rune {
	if h <= 0 {
		return ' '
	}
	b := 1 - (float64(row)-float64(h)/2)/(float64(h)/2)
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'x'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	}
	return ' '
}
