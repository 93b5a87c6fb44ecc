package model

import (
	"fmt"
	"math"
	"strconv"
)

const tolerance = 1e-9

// Check compares a result against the expectations that are set.
func (x Expectations) Check(r *Result) []Violation {
	var out []Violation
	if x.Found != nil && *x.Found != r.Found {
		out = append(out, Violation{"found", strconv.FormatBool(*x.Found), strconv.FormatBool(r.Found)})
	}
	if x.Cost != nil && !near(*x.Cost, r.Cost) {
		out = append(out, Violation{"cost", formatFloat(*x.Cost), formatFloat(r.Cost)})
	}
	if x.Length != nil && *x.Length != len(r.Actions) {
		out = append(out, Violation{"length", strconv.Itoa(*x.Length), strconv.Itoa(len(r.Actions))})
	}
	if x.Action != nil && *x.Action != r.Action {
		out = append(out, Violation{"action", fmt.Sprintf("%q", *x.Action), fmt.Sprintf("%q", r.Action)})
	}
	if x.Value != nil && !near(*x.Value, r.Value) {
		out = append(out, Violation{"value", formatFloat(*x.Value), formatFloat(r.Value)})
	}
	return out
}

func near(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(a))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
