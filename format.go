package exposure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// ColumnWidth is the width every table cell is padded to.
	ColumnWidth = 7

	// Overflow is shown for exposures the camera cannot time in bulb
	// mode (100 hours or more).
	Overflow = "x"

	fractionLimit = 0.25
	decimalLimit  = 30.0
	maxBulbHours  = 99

	// maxFraction is the largest denominator that fits in a cell.
	maxFraction = 9999999
)

// FormatTime renders an exposure time in seconds the way the camera
// displays it, padded to ColumnWidth:
//
//	FormatTime(0.001)   // "   1000"   (1/1000s, the "1/" is implied)
//	FormatTime(0.25)    // "      4"
//	FormatTime(3.2)     // "    3\"2"
//	FormatTime(30.01)   // " 0' 31\""  (bulb, minutes and seconds)
//	FormatTime(3900)    // " 1h 05'"   (bulb, hours and minutes)
//	FormatTime(360000)  // "x      "
//	FormatTime(1e-9)    // "x      "   (faster than 1/9999999s)
func FormatTime(t float64) string {
	switch {
	case t <= fractionLimit:
		return formatFraction(t)
	case t <= decimalLimit:
		return padLeft(formatDecimal(t))
	}
	return formatBulb(t)
}

func formatFraction(t float64) string {
	// Checked on the float so tiny times never reach integer conversion
	d := math.Round(1.0 / t)
	if !(d >= 1 && d <= maxFraction) {
		return padRight(Overflow)
	}
	return padLeft(strconv.Itoa(int(d)))
}

// formatDecimal renders 0.25 < t <= 30 as seconds"tenths. Tenths that
// round up to 10 carry into the seconds.
func formatDecimal(t float64) string {
	whole := math.Floor(t)
	tenths := int(math.Round((t - whole) * 10))
	if tenths == 10 {
		whole++
		tenths = 0
	}
	return fmt.Sprintf("%d\"%d", int(whole), tenths)
}

func formatBulb(t float64) string {
	// Checked on the float so huge times never reach integer conversion
	if math.Ceil(t) >= (maxBulbHours+1)*3600 {
		return padRight(Overflow)
	}

	total := int(math.Ceil(t))
	minutes := total / 60
	seconds := total % 60
	if minutes <= 60 {
		return padLeft(fmt.Sprintf("%d' %02d\"", minutes, seconds))
	}

	// Seconds are dropped once the exposure runs past an hour
	hours := minutes / 60
	minutes = minutes % 60
	return padLeft(fmt.Sprintf("%dh %02d'", hours, minutes))
}

func padLeft(s string) string {
	if n := ColumnWidth - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string) string {
	if n := ColumnWidth - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
