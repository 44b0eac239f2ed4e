package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess_OptimalState(t *testing.T) {
	a := Assess(8, 100)
	assert.Equal(t, 1.0, a.Factor)
	assert.Equal(t, AlertOptimal, a.Alert)
	assert.Equal(t, SleepGood, a.Sleep)
	assert.Equal(t, ExerciseGood, a.Exercise)
	assert.Contains(t, a.Note, "risk scale x1.00")
	assert.Contains(t, a.Guidance, "trade normally")
}

func TestAssess_HighRiskState(t *testing.T) {
	a := Assess(4, 30)
	assert.Equal(t, 0.2, a.Factor)
	assert.Equal(t, AlertHighRisk, a.Alert)
	assert.Equal(t, SleepPoor, a.Sleep)
	assert.Equal(t, ExercisePoor, a.Exercise)
}

func TestAssess_Bands(t *testing.T) {
	cases := []struct {
		name     string
		sleep    float64
		exercise int
		factor   float64
		alert    AlertLevel
	}{
		{"moderate sleep moderate exercise", 6, 75, 0.5, AlertModerateRisk},
		{"sleep boundary 7h", 7, 90, 1.0, AlertOptimal},
		{"sleep boundary 5h", 5, 90, 0.75, AlertCaution},
		{"just under 5h", 4.99, 90, 0.6, AlertElevatedRisk},
		{"exercise boundary 60min", 7.5, 60, 0.75, AlertCaution},
		{"exercise boundary 89min", 7.5, 89, 0.75, AlertCaution},
		{"moderate sleep no exercise", 5.5, 0, 0.35, AlertHighRisk},
		{"good sleep no exercise", 9, 10, 0.6, AlertModerateRisk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Assess(tc.sleep, tc.exercise)
			assert.InDelta(t, tc.factor, a.Factor, 1e-9)
			assert.Equal(t, tc.alert, a.Alert)
		})
	}
}

func TestAssess_FactorAlwaysBounded(t *testing.T) {
	inputs := []struct {
		sleep    float64
		exercise int
	}{
		{-3, -120}, {0, 0}, {2.5, 30}, {100, 100000}, {-0.01, 90},
	}
	for _, in := range inputs {
		a := Assess(in.sleep, in.exercise)
		assert.GreaterOrEqual(t, a.Factor, FactorMin)
		assert.LessOrEqual(t, a.Factor, FactorMax)
	}
}

func TestAssess_NegativeInputsFallIntoLowestBand(t *testing.T) {
	a := Assess(-1, -30)
	assert.Equal(t, SleepPoor, a.Sleep)
	assert.Equal(t, ExercisePoor, a.Exercise)
	assert.Equal(t, 0.2, a.Factor)
}

func TestMatrix_CoversAllCombinations(t *testing.T) {
	sleeps := []SleepCategory{SleepPoor, SleepModerate, SleepGood}
	exercises := []ExerciseCategory{ExercisePoor, ExerciseModerate, ExerciseGood}
	for _, s := range sleeps {
		for _, e := range exercises {
			cell, ok := riskMatrix[matrixKey{s, e}]
			assert.True(t, ok, "missing matrix cell %s/%s", s, e)
			assert.NotEmpty(t, cell.description)
			assert.NotEmpty(t, tradingGuidance[cell.alert])
		}
	}
}
