package engine

import "math"

// Ranking holds the four relevance signals attached to every node plus
// the score derived from them. All signals live on a 0-100 scale.
//
// Score is never set directly; it is recomputed from the other four
// fields whenever any of them changes.
type Ranking struct {
	Recency      int `json:"recency"`
	Frequency    int `json:"frequency"`
	Completeness int `json:"completeness"`
	Trust        int `json:"trust"`
	Score        int `json:"score"`
}

// Fixed signal weights. They must sum to 1.0 if ever retuned.
const (
	weightRecency      = 0.20
	weightFrequency    = 0.20
	weightCompleteness = 0.35
	weightTrust        = 0.25
)

// Score maps the four ranking signals to a single 0-100 score using the
// fixed weights. Inputs are clamped to [0,100] at this boundary, so the
// result is total and deterministic for any integer inputs.
func Score(recency, frequency, completeness, trust int) int {
	r := float64(clamp(recency))
	f := float64(clamp(frequency))
	c := float64(clamp(completeness))
	t := float64(clamp(trust))
	return int(math.Round(r*weightRecency + f*weightFrequency + c*weightCompleteness + t*weightTrust))
}

// rescore recomputes the derived score in place.
func (r *Ranking) rescore() {
	r.Recency = clamp(r.Recency)
	r.Frequency = clamp(r.Frequency)
	r.Completeness = clamp(r.Completeness)
	r.Trust = clamp(r.Trust)
	r.Score = Score(r.Recency, r.Frequency, r.Completeness, r.Trust)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
