package model

// Mood keys double as localization keys in the UI.
const (
	MoodCalm  = "calm"
	MoodHappy = "happy"
	MoodSad   = "sad"
)

// Mood is one wedge of the mood donut chart
type Mood struct {
	Key    string
	Weight float64
	Color  string
}

// DefaultMoods returns the mood shares shown on the dashboard
func DefaultMoods() []Mood {
	return []Mood{
		{Key: MoodCalm, Weight: 40, Color: "#4CAF50"},
		{Key: MoodHappy, Weight: 35, Color: "#2196F3"},
		{Key: MoodSad, Weight: 25, Color: "#F44336"},
	}
}

// MoodWeights returns the weights in display order
func MoodWeights(moods []Mood) []float64 {
	weights := make([]float64, len(moods))
	for i, m := range moods {
		weights[i] = m.Weight
	}
	return weights
}
