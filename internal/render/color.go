package render

import "math"

// turbo is a polynomial fit of the Turbo colormap for t in [0,1].
func turbo(t float64) (float64, float64, float64) {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t

	r := 0.13572138 + 4.6153926*t - 42.66032258*t2 + 132.13108234*t3 - 152.94239396*t4 + 59.28637943*t5
	g := 0.09140261 + 2.94319816*t + 4.23465233*t2 - 24.86742029*t3 + 60.45632801*t4 - 54.2984038*t5
	b := 0.1066733 + 11.60249368*t - 60.13642266*t2 + 136.11487975*t3 - 140.45121126*t4 + 52.60698968*t5

	return clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)
}

// hsvToRGB converts hue in degrees [0,360), saturation and value to RGB.
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	c := v * s
	x := c * (1 - math.Abs(glslMod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

// glslMod is x - y*floor(x/y); unlike math.Mod it is never negative for
// positive y.
func glslMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// toByte maps a channel in [0,1] to 0..255, clamping out-of-range values.
func toByte(v float64) byte {
	return byte(math.Round(clamp(v, 0, 1) * 255))
}
