package anim

import "math"

// RateFunc maps linear progress in [0, 1] to eased progress.
type RateFunc func(t float64) float64

// Linear leaves progress untouched.
func Linear(t float64) float64 { return t }

// Smooth is a logistic ease in and out with inflection 10, rescaled so that
// Smooth(0) = 0 and Smooth(1) = 1.
func Smooth(t float64) float64 {
	const inflection = 10.0
	err := sigmoid(-inflection / 2)
	return clamp01((sigmoid(inflection*(t-0.5)) - err) / (1 - 2*err))
}

// DoubleSmooth eases each half separately.
func DoubleSmooth(t float64) float64 {
	if t < 0.5 {
		return 0.5 * Smooth(2*t)
	}
	return 0.5 * (1 + Smooth(2*t-1))
}

// RushInto accelerates into the end.
func RushInto(t float64) float64 { return 2 * Smooth(t/2) }

// RushFrom decelerates out of the start.
func RushFrom(t float64) float64 { return 2*Smooth(t/2+0.5) - 1 }

// ThereAndBack goes to 1 at the midpoint and returns to 0.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 * (1 - t))
}

// ThereAndBackWithPause holds at 1 for the middle third.
func ThereAndBackWithPause(t float64) float64 {
	const pause = 1.0 / 3
	a := 1 / pause
	switch {
	case t < 0.5-pause/2:
		return Smooth(a * t)
	case t < 0.5+pause/2:
		return 1
	default:
		return Smooth(a - a*t)
	}
}

// lagged returns the progress of member i of n when members start lag of a
// member's duration after each other and the whole runs over [0, 1].
func lagged(alpha float64, i, n int, lag float64) float64 {
	full := float64(n-1)*lag + 1
	return clamp01(alpha*full - float64(i)*lag)
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
