// Package balance scores how a day's hours split across work, personal,
// health and leisure compares to a fixed ideal allocation.
//
// Everything here is pure: the same hours always yield the same score.
// Clamping of user input happens at the input boundary through Clamp,
// Hours.Clamped and Hours.With, never inside Score.
package balance

import "math"

// Category names one of the four time-allocation buckets.
type Category string

const (
	Work     Category = "work"
	Personal Category = "personal"
	Health   Category = "health"
	Leisure  Category = "leisure"
)

// Categories lists the buckets in display order.
var Categories = []Category{Work, Personal, Health, Leisure}

// IdealPercentage is the target share of each category, in percent.
var IdealPercentage = map[Category]float64{
	Work:     40,
	Personal: 30,
	Health:   20,
	Leisure:  10,
}

// Hours is one day's time allocation.
type Hours struct {
	Work     float64 `json:"work_hours"`
	Personal float64 `json:"personal_hours"`
	Health   float64 `json:"health_hours"`
	Leisure  float64 `json:"leisure_hours"`
}

// Get returns the hours booked for c; unknown categories read as 0.
func (h Hours) Get(c Category) float64 {
	switch c {
	case Work:
		return h.Work
	case Personal:
		return h.Personal
	case Health:
		return h.Health
	case Leisure:
		return h.Leisure
	default:
		return 0
	}
}

// With returns a copy of h with category c set to Clamp(v).
// Unknown categories leave h unchanged.
func (h Hours) With(c Category, v float64) Hours {
	v = Clamp(v)
	switch c {
	case Work:
		h.Work = v
	case Personal:
		h.Personal = v
	case Health:
		h.Health = v
	case Leisure:
		h.Leisure = v
	}
	return h
}

// Clamped returns h with every negative field raised to zero.
func (h Hours) Clamped() Hours {
	return Hours{
		Work:     Clamp(h.Work),
		Personal: Clamp(h.Personal),
		Health:   Clamp(h.Health),
		Leisure:  Clamp(h.Leisure),
	}
}

// Clamp floors v at zero. NaN and infinities are treated as zero.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Total is the sum of the four categories.
func Total(h Hours) float64 {
	return h.Work + h.Personal + h.Health + h.Leisure
}

// Share is one line of a percentage breakdown.
type Share struct {
	Category   Category
	Hours      float64
	Percentage float64
	Ideal      float64
}

// Breakdown returns each category's share of the total next to its ideal.
// With a zero or non-finite total every percentage is zero.
func Breakdown(h Hours) []Share {
	total := Total(h)
	if !finitePositive(total) {
		total = 0
	}
	shares := make([]Share, 0, len(Categories))
	for _, c := range Categories {
		hours := h.Get(c)
		var pct float64
		if total != 0 {
			pct = hours / total * 100
		}
		shares = append(shares, Share{
			Category:   c,
			Hours:      hours,
			Percentage: pct,
			Ideal:      IdealPercentage[c],
		})
	}
	return shares
}

// Score rates h from 0 to 100. It sums the absolute differences between the
// actual and ideal ratio of every category and maps that deviation d to
// round(max(0, 1-d) * 100). A zero or non-finite total scores 0.
func Score(h Hours) int {
	total := Total(h)
	if !finitePositive(total) {
		return 0
	}

	var deviation float64
	for _, c := range Categories {
		actual := h.Get(c) / total
		ideal := IdealPercentage[c] / 100
		deviation += math.Abs(actual - ideal)
	}

	if math.IsNaN(deviation) {
		return 0
	}
	score := math.Round(math.Max(0, 1-deviation) * 100)
	return int(math.Min(score, 100))
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
