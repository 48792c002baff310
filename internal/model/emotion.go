package model

import "math"

// Emotion keys double as localization keys in the UI.
const (
	EmotionJoy      = "joy"
	EmotionAnger    = "anger"
	EmotionSurprise = "surprise"
)

// Sampling window for the emotion curves, in hours
const (
	TimelineStart   = 0.0
	TimelineEnd     = 24.0
	TimelineSamples = 100
)

// Point is a single (x, y) sample
type Point struct {
	X float64
	Y float64
}

// EmotionCurve is a named synthetic emotion level over time
type EmotionCurve struct {
	Key    string
	Color  string
	Level  func(t float64) float64
	Points []Point
}

// Timeline returns n evenly spaced values from start to end, both included
func Timeline(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	step := (end - start) / float64(n-1)
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	// Avoid accumulated drift on the last sample.
	values[n-1] = end
	return values
}

// SampleEmotions returns the Joy, Anger and Surprise curves sampled over
// the last 24 hours
func SampleEmotions() []EmotionCurve {
	curves := []EmotionCurve{
		{Key: EmotionJoy, Color: "green", Level: func(t float64) float64 { return math.Sin(t) + 2 }},
		{Key: EmotionAnger, Color: "red", Level: func(t float64) float64 { return math.Cos(t) + 2 }},
		{Key: EmotionSurprise, Color: "blue", Level: func(t float64) float64 { return math.Sin(t/2) + 2 }},
	}

	times := Timeline(TimelineStart, TimelineEnd, TimelineSamples)
	for i := range curves {
		curves[i].Points = Sample(curves[i].Level, times)
	}
	return curves
}

// Sample evaluates level at every time
func Sample(level func(float64) float64, times []float64) []Point {
	points := make([]Point, len(times))
	for i, t := range times {
		points[i] = Point{X: t, Y: level(t)}
	}
	return points
}
