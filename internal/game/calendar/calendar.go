// Package calendar converts simulation ticks to in-game dates and provides
// the bounded arithmetic used for every clamped resource.
//
// One tick is one week; a year is 52 ticks. Tick 0 is week 1 of year 1.
package calendar

import "math"

// WeeksPerYear is the number of ticks in a simulated year.
const WeeksPerYear = 52

// Date is a 1-based (year, week) pair.
type Date struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// DateFromTick converts a tick to its date.
func DateFromTick(tick int) Date {
	return Date{
		Year: tick/WeeksPerYear + 1,
		Week: tick%WeeksPerYear + 1,
	}
}

// TickFromDate converts a date back to its tick.
func TickFromDate(d Date) int {
	return (d.Year-1)*WeeksPerYear + (d.Week - 1)
}

// IsYearEnd reports whether the tick is the last week of a year.
func IsYearEnd(tick int) bool {
	return tick%WeeksPerYear == WeeksPerYear-1
}

// YearEndsBetween returns every year-end tick in the half-open range (from, to].
// A turn that spans several weeks may cross a year boundary without landing on it.
func YearEndsBetween(from, to int) []int {
	var ends []int
	for t := from + 1; t <= to; t++ {
		if IsYearEnd(t) {
			ends = append(ends, t)
		}
	}
	return ends
}

// Age returns the player's age at the given tick.
func Age(startAge, tick int) int {
	return startAge + tick/WeeksPerYear
}

// BoundedDelta adds delta to current and clamps the result to [lo, hi].
func BoundedDelta(current, delta, lo, hi float64) float64 {
	return Clamp(current+delta, lo, hi)
}

// BoundedDeltaInt applies a fractional delta to an integer resource, rounding
// to the nearest integer before clamping.
func BoundedDeltaInt(current int, delta float64, lo, hi int) int {
	v := int(math.Round(float64(current) + delta))
	return min(max(v, lo), hi)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
