// Package program computes per-student Programs, Misc, and Timeback costs
// as piecewise functions of tuition and enrollment.
package program

import (
	"facility_economics/pkg/core/tier"
	"facility_economics/pkg/models"
)

const (
	programsEconomy = 1250.0
	programsValue   = 2500.0
	programsHigh    = 12000.0 // standard/premium at <= 50 students
	programsLow     = 8500.0  // standard/premium at >= 100 students

	miscFloor = 1500.0
	miscHigh  = 3500.0 // at <= 50 students

	timebackRate  = 0.20
	timebackFloor = 5000.0
	timebackCap   = 15000.0
)

// ProgramsPerStudent: flat for the economy and value bands; for
// standard/premium, linear from 12,000 at 50 students down to 8,500 at
// 100, flat outside that range.
func ProgramsPerStudent(tuition, students float64) float64 {
	switch tier.ForTuition(tuition) {
	case models.TierEconomy:
		return programsEconomy
	case models.TierValue:
		return programsValue
	default:
		return rampDown(students, programsHigh, programsLow)
	}
}

// MiscPerStudent: flat 1,500 for the economy band regardless of scale
// (explicit exception); otherwise linear from 3,500 at 50 students down
// to 1,500 at 100, flat thereafter.
func MiscPerStudent(tuition, students float64) float64 {
	if tier.ForTuition(tuition) == models.TierEconomy {
		return miscFloor
	}
	return rampDown(students, miscHigh, miscFloor)
}

// Timeback is 20% of tuition with a 5,000 floor and a 15,000 cap.
func Timeback(tuition float64) float64 {
	t := tuition * timebackRate
	if t < timebackFloor {
		return timebackFloor
	}
	if t > timebackCap {
		return timebackCap
	}
	return t
}

// rampDown interpolates linearly from high at <= 50 students to low at
// >= 100 students.
func rampDown(students, high, low float64) float64 {
	switch {
	case students <= 50:
		return high
	case students >= 100:
		return low
	default:
		return high - (high-low)*(students-50)/50
	}
}
