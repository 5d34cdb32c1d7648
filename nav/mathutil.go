package nav

import "math"

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func fastCos(radians float64) float64 { return math.Cos(radians) }
func fastSin(radians float64) float64 { return math.Sin(radians) }
