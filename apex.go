package exposure

import (
	"fmt"
	"math"
)

// StopFactor is the exposure time multiplier for n stops of light
// removed. Every stop doubles the time.
func StopFactor(n int) float64 {
	return math.Exp2(float64(n))
}

// ShutterFromAPEX converts an APEX shutter speed value (Tv), as stored
// in EXIF metadata, to a Shutter. Tv 0 is one second and each unit
// halves the time. It panics if the resulting time is not a positive,
// finite number of seconds.
func ShutterFromAPEX(tv float64) Shutter {
	t := math.Exp2(-tv)
	if !(t > 0) || math.IsInf(t, 1) {
		panic(fmt.Sprintf("exposure: invalid APEX shutter value %g", tv))
	}
	return Shutter{Time: t}
}
