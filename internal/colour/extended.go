package colour

const (
	cubeSteps   = 6
	rampSteps   = 24
	cubeStart   = 16
	rampStart   = cubeStart + cubeSteps*cubeSteps*cubeSteps
	paletteSize = rampStart + rampSteps
)

// Base16 is an ANSI 16-colour terminal palette.
type Base16 [16]RGB

// Extended is a full 256-colour terminal palette: the base 16, a 6x6x6 colour
// cube at 16-231 and a grayscale ramp at 232-255.
type Extended [paletteSize]RGB

// Generate256 derives the 240 extended colours from a base palette by
// interpolating in LAB space. The cube corners are anchored to the palette's
// own colours (background, red, green, yellow, blue, purple, the second blue
// slot and foreground) instead of raw RGB primaries, and the ramp runs from
// background to foreground without touching either endpoint.
func Generate256(base Base16, bg, fg RGB) Extended {
	var out Extended
	copy(out[:len(base)], base[:])

	var anchors [8]Lab
	for i := range anchors {
		anchors[i] = RGBToLab(base[i])
	}
	bgLab := RGBToLab(bg)
	fgLab := RGBToLab(fg)

	idx := cubeStart
	for r := range cubeSteps {
		tr := float64(r) / (cubeSteps - 1)
		c0 := LerpLab(tr, bgLab, anchors[1])
		c1 := LerpLab(tr, anchors[2], anchors[3])
		c2 := LerpLab(tr, anchors[4], anchors[5])
		c3 := LerpLab(tr, anchors[6], fgLab)

		for g := range cubeSteps {
			tg := float64(g) / (cubeSteps - 1)
			c4 := LerpLab(tg, c0, c1)
			c5 := LerpLab(tg, c2, c3)

			for b := range cubeSteps {
				tb := float64(b) / (cubeSteps - 1)
				out[idx] = LabToRGB(LerpLab(tb, c4, c5))
				idx++
			}
		}
	}

	for i := range rampSteps {
		t := float64(i+1) / (rampSteps + 1)
		out[rampStart+i] = LabToRGB(LerpLab(t, bgLab, fgLab))
	}

	return out
}

// Colours returns the palette as a slice.
func (b Base16) Colours() []RGB {
	return b[:]
}

// Colours returns the palette as a slice.
func (e Extended) Colours() []RGB {
	return e[:]
}
