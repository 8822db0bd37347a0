package ingest

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestExceeds(t *testing.T) {
	testCases := []struct {
		name      string
		score     float64
		threshold float64
		want      bool
	}{
		{"above", 55.0, 50.0, true},
		{"below", 30.0, 50.0, false},
		{"equal is not flagged", 50.0, 50.0, false},
		{"just above", 50.000001, 50.0, true},
		{"zero threshold", 0.1, 0.0, true},
		{"zero score zero threshold", 0.0, 0.0, false},
		{"out of range score", 150.0, 50.0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Exceeds(tc.score, tc.threshold); got != tc.want {
				t.Errorf("Exceeds(%v, %v) = %v, want %v", tc.score, tc.threshold, got, tc.want)
			}
		})
	}
}

func TestExceeds_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("a score equal to the threshold never flags", prop.ForAll(
		func(v float64) bool {
			return !Exceeds(v, v)
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.Property("flagging agrees with strict comparison", prop.ForAll(
		func(score, threshold float64) bool {
			return Exceeds(score, threshold) == (score > threshold)
		},
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
	))

	properties.Property("raising the score never unflags", prop.ForAll(
		func(score, delta, threshold float64) bool {
			if !Exceeds(score, threshold) {
				return true
			}
			return Exceeds(score+delta, threshold)
		},
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
	))

	properties.TestingRun(t)
}
