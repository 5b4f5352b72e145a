package colour

import "math"

// Lab is a colour in CIE L*a*b* space. L is nominally 0-100 and a/b roughly
// -128..127, but no range is enforced.
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white used to normalise XYZ.
var referenceWhite = struct{ X, Y, Z float64 }{
	X: 0.95047,
	Y: 1.0,
	Z: 1.08883,
}

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// labF is the CIE cube-root helper, linear near zero to avoid the
// singularity at black.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labFInverse(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}

// srgbToLinear removes sRGB companding from an 8-bit channel.
func srgbToLinear(v uint8) float64 {
	normalised := float64(v) / 255.0
	if normalised <= 0.04045 {
		return normalised / 12.92
	}
	return math.Pow((normalised+0.055)/1.055, 2.4)
}

// linearToSrgb re-applies companding and quantises to 8 bits. Out-of-gamut
// values saturate at 0 or 255.
func linearToSrgb(v float64) uint8 {
	var companded float64
	if v > 0.0031308 {
		companded = 1.055*math.Pow(v, 1/2.4) - 0.055
	} else {
		companded = 12.92 * v
	}
	companded = math.Max(0, math.Min(1, companded))
	return uint8(math.Round(companded * 255))
}

// RGBToLab converts an sRGB colour to CIE LAB.
func RGBToLab(rgb RGB) Lab {
	r := srgbToLinear(rgb.R)
	g := srgbToLinear(rgb.G)
	b := srgbToLinear(rgb.B)

	x := (r*0.4124564 + g*0.3575761 + b*0.1804375) / referenceWhite.X
	y := (r*0.2126729 + g*0.7151522 + b*0.072175) / referenceWhite.Y
	z := (r*0.0193339 + g*0.119192 + b*0.9503041) / referenceWhite.Z

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToRGB converts a CIE LAB colour back to 8-bit sRGB, clamping each
// channel into gamut.
func LabToRGB(lab Lab) RGB {
	fy := (lab.L + 16) / 116
	fx := lab.A/500 + fy
	fz := fy - lab.B/200

	x := labFInverse(fx) * referenceWhite.X
	y := labFInverse(fy) * referenceWhite.Y
	z := labFInverse(fz) * referenceWhite.Z

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.969266 + y*1.8760108 + z*0.041556
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: linearToSrgb(r),
		G: linearToSrgb(g),
		B: linearToSrgb(b),
	}
}

// LerpLab interpolates componentwise between start and end. t is not clamped.
func LerpLab(t float64, start, end Lab) Lab {
	return Lab{
		L: start.L + t*(end.L-start.L),
		A: start.A + t*(end.A-start.A),
		B: start.B + t*(end.B-start.B),
	}
}
