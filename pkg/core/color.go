package core

import "math"

// RGB is a quantized 8-bit color
type RGB struct {
	R, G, B uint8
}

// intensity keeps quantized channels strictly below 256
var intensity = Interval{Min: 0.000, Max: 0.999}

// LinearToGamma converts a linear channel to gamma 2 space
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToRGB gamma-corrects, clamps and quantizes a linear color
func ToRGB(color Vec3) RGB {
	return RGB{
		R: quantize(color.X),
		G: quantize(color.Y),
		B: quantize(color.Z),
	}
}

func quantize(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}
