package exposure

import (
	"fmt"
)

// Shutter is a shutter speed as offered by the camera dial.
type Shutter struct {
	// Time is the exposure duration in seconds. It is always positive.
	Time float64 `json:"time"`
}

// Fraction returns the 1/d second shutter speed. It panics if d < 1.
func Fraction(d int) Shutter {
	if d < 1 {
		panic(fmt.Sprintf("exposure: invalid shutter fraction 1/%d", d))
	}
	return Shutter{Time: 1.0 / float64(d)}
}

// Seconds returns the shutter speed of whole seconds plus tenths, the
// way the camera shows 3"2 for 3.2s. It panics unless tenths is a single
// digit and the resulting time is positive.
func Seconds(whole, tenths int) Shutter {
	if whole < 0 || tenths < 0 || tenths > 9 || whole+tenths == 0 {
		panic(fmt.Sprintf("exposure: invalid shutter time %d\"%d", whole, tenths))
	}
	return Shutter{Time: float64(whole) + float64(tenths)/10.0}
}

// ApplyStops returns the exposure time in seconds after n stops of
// filtering. The receiver is not modified.
func (s Shutter) ApplyStops(n int) float64 {
	return s.Time * StopFactor(n)
}

// StringWithStops renders the shutter time after n stops of filtering.
func (s Shutter) StringWithStops(n int) string {
	return FormatTime(s.ApplyStops(n))
}

func (s Shutter) String() string {
	return FormatTime(s.Time)
}
