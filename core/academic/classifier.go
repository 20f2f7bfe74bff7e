package academic

import "math"

// Classification is the deterministic verdict on one submission.
type Classification struct {
	PerformanceScore int
	RiskScore        int
	RiskLevel        RiskLevel
}

// Classify scores one submission. Pure and total: inputs are assumed already
// clamped to [0,100] by the caller and are not range-checked here.
//
// The tiers are evaluated in fixed priority order; the first match wins:
//  1. HIGH when the average drops below 50, attendance below 60 or internal
//     marks below 40.
//  2. LOW when the average clears 75 with attendance above 80 and internal
//     marks above 70.
//  3. MEDIUM otherwise.
func Classify(attendance, internalMarks, assignmentScore float64) Classification {
	performance := int(math.Round((attendance + internalMarks + assignmentScore) / 3))

	level := RiskMedium
	switch {
	case performance < 50 || attendance < 60 || internalMarks < 40:
		level = RiskHigh
	case performance > 75 && attendance > 80 && internalMarks > 70:
		level = RiskLow
	}

	return Classification{
		PerformanceScore: performance,
		RiskScore:        100 - performance,
		RiskLevel:        level,
	}
}
