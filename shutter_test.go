package exposure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutterConstructors(t *testing.T) {
	assert.Equal(t, 0.001, Fraction(1000).Time)
	assert.Equal(t, 1.0, Fraction(1).Time)
	assert.InDelta(t, 3.2, Seconds(3, 2).Time, 1e-9)
	assert.InDelta(t, 0.3, Seconds(0, 3).Time, 1e-9)
	assert.Equal(t, 30.0, Seconds(30, 0).Time)
}

func TestShutterConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { Fraction(0) })
	assert.Panics(t, func() { Fraction(-8) })
	assert.Panics(t, func() { Seconds(0, 0) })
	assert.Panics(t, func() { Seconds(1, 10) })
	assert.Panics(t, func() { Seconds(-1, 5) })
}

func TestShutterString(t *testing.T) {
	assert.Equal(t, "   4000", Fraction(4000).String())
	assert.Equal(t, "      4", Fraction(4).String())
	assert.Equal(t, "    0\"3", Seconds(0, 3).String())
	assert.Equal(t, "    3\"2", Seconds(3, 2).String())
	assert.Equal(t, "   30\"0", Seconds(30, 0).String())
}

func TestApplyStops(t *testing.T) {
	s := Fraction(1000)
	assert.Equal(t, s.Time, s.ApplyStops(0))
	assert.InDelta(t, 1.024, s.ApplyStops(10), 1e-12)
	assert.Equal(t, 0.001, s.Time)

	assert.Equal(t, "    1\"0", s.StringWithStops(10))
	assert.Equal(t, "   1000", s.StringWithStops(0))
	assert.Equal(t, "    250", s.StringWithStops(2))
	assert.Equal(t, "x      ", Seconds(30, 0).StringWithStops(18))
	assert.Equal(t, " 2' 08\"", Seconds(1, 0).StringWithStops(7))
}

func TestApplyStopsIsMonotonic(t *testing.T) {
	for _, s := range Shutters {
		for n := 1; n <= 21; n++ {
			assert.GreaterOrEqual(t, s.ApplyStops(n), s.ApplyStops(n-1))
		}
	}
}

func TestZeroStopsMatchesString(t *testing.T) {
	for _, s := range Shutters {
		assert.Equal(t, s.String(), s.StringWithStops(0))
	}
}

func TestStopFactor(t *testing.T) {
	assert.Equal(t, 1.0, StopFactor(0))
	assert.Equal(t, 8.0, StopFactor(3))
	assert.Equal(t, 262144.0, StopFactor(18))
}

func TestShutterFromAPEX(t *testing.T) {
	assert.Equal(t, 1.0, ShutterFromAPEX(0).Time)
	assert.Equal(t, "   1024", ShutterFromAPEX(10).String())
	assert.Equal(t, "    2\"0", ShutterFromAPEX(-1).String())

	// Exp2 underflows to zero and overflows to infinity
	assert.Panics(t, func() { ShutterFromAPEX(1100) })
	assert.Panics(t, func() { ShutterFromAPEX(-1100) })
	assert.Panics(t, func() { ShutterFromAPEX(math.NaN()) })
}
