// Package health maps a trader's sleep and exercise state to a bounded
// risk-scaling factor plus a categorical alert from a fixed 3x3 matrix.
package health

import "fmt"

type SleepCategory string

const (
	SleepPoor     SleepCategory = "Poor Sleep"
	SleepModerate SleepCategory = "Moderate Sleep"
	SleepGood     SleepCategory = "Good Sleep"
)

type ExerciseCategory string

const (
	ExercisePoor     ExerciseCategory = "Poor Exercise"
	ExerciseModerate ExerciseCategory = "Moderate Exercise"
	ExerciseGood     ExerciseCategory = "Good Exercise"
)

type AlertLevel string

const (
	AlertOptimal      AlertLevel = "🟢 Optimal"
	AlertCaution      AlertLevel = "🟡 Caution"
	AlertModerateRisk AlertLevel = "🟠 Moderate Risk"
	AlertElevatedRisk AlertLevel = "🟠 Elevated Risk"
	AlertHighRisk     AlertLevel = "🔴 High Risk"
	AlertUnknown      AlertLevel = "❓ Unknown"
)

const (
	// FactorMin and FactorMax bound the risk-scaling factor.
	FactorMin = 0.2
	FactorMax = 1.0
)

// Assessment is the result of scoring one morning's sleep and exercise.
type Assessment struct {
	Factor   float64
	Sleep    SleepCategory
	Exercise ExerciseCategory
	Alert    AlertLevel
	Note     string
	Guidance string
}

type matrixCell struct {
	alert       AlertLevel
	description string
}

type matrixKey struct {
	sleep    SleepCategory
	exercise ExerciseCategory
}

// riskMatrix is the fixed sleep x exercise alert table. It is never
// mutated after init.
var riskMatrix = map[matrixKey]matrixCell{
	{SleepPoor, ExercisePoor}:         {AlertHighRisk, "Judgment impaired, stress high, discipline weak — avoid trading."},
	{SleepPoor, ExerciseModerate}:     {AlertHighRisk, "Some physical balance, but fatigue dominates — high chance of costly mistakes."},
	{SleepPoor, ExerciseGood}:         {AlertElevatedRisk, "Good fitness helps, but poor rest still limits focus."},
	{SleepModerate, ExercisePoor}:     {AlertHighRisk, "Partial rest + inactivity = sluggish, reactive trading."},
	{SleepModerate, ExerciseModerate}: {AlertModerateRisk, "Fair balance, but not peak performance — trade smaller size."},
	{SleepModerate, ExerciseGood}:     {AlertCaution, "Reasonable discipline, but not optimal endurance."},
	{SleepGood, ExercisePoor}:         {AlertModerateRisk, "Rested mind, but low fitness = shorter stamina in volatile sessions."},
	{SleepGood, ExerciseModerate}:     {AlertCaution, "Balanced state, can trade cautiously with discipline."},
	{SleepGood, ExerciseGood}:         {AlertOptimal, "Peak focus, strong discipline, reduced stress — ideal trading state."},
}

var tradingGuidance = map[AlertLevel]string{
	AlertOptimal:      "Conditions are favorable; trade normally within risk rules.",
	AlertCaution:      "Conditions are decent; reduce position size slightly.",
	AlertModerateRisk: "Conditions are mixed; reduce trade frequency and size.",
	AlertElevatedRisk: "Conditions are imbalanced; limit trades, be defensive.",
	AlertHighRisk:     "Avoid trading; risk of errors and emotional decisions is high.",
}

// Assess scores sleep hours and exercise minutes into a risk-scaling
// factor in [FactorMin, FactorMax] and the matching alert. Negative
// inputs fall into the lowest band rather than erroring.
func Assess(sleepHours float64, exerciseMinutes int) Assessment {
	var sleepScore float64
	var sleepCat SleepCategory
	switch {
	case sleepHours >= 7:
		sleepScore, sleepCat = 1.0, SleepGood
	case sleepHours >= 5:
		sleepScore, sleepCat = 0.5, SleepModerate
	default:
		sleepScore, sleepCat = 0.2, SleepPoor
	}

	var exerciseScore float64
	var exerciseCat ExerciseCategory
	switch {
	case exerciseMinutes >= 90:
		exerciseScore, exerciseCat = 1.0, ExerciseGood
	case exerciseMinutes >= 60:
		exerciseScore, exerciseCat = 0.5, ExerciseModerate
	default:
		exerciseScore, exerciseCat = 0.2, ExercisePoor
	}

	factor := clamp((sleepScore+exerciseScore)/2, FactorMin, FactorMax)

	alert := AlertUnknown
	description := ""
	if cell, ok := riskMatrix[matrixKey{sleepCat, exerciseCat}]; ok {
		alert = cell.alert
		description = cell.description
	}

	return Assessment{
		Factor:   factor,
		Sleep:    sleepCat,
		Exercise: exerciseCat,
		Alert:    alert,
		Note: fmt.Sprintf("%s | %s (sleep=%s, exercise=%s, risk scale x%.2f)",
			alert, description, sleepCat, exerciseCat, factor),
		Guidance: tradingGuidance[alert],
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
