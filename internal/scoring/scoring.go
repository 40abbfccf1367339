// Package scoring holds the weight and threshold tables shared by the judge
// evaluator and the pipeline's legacy confidence fallback.
package scoring

import (
	"math"

	"github.com/kube-rca/incident-comms/internal/model"
)

// Judge dimensions
const (
	DimensionClarity    = "Clarity and Customer Focus"
	DimensionTone       = "Tone Consistency with Brand Voice"
	DimensionTechnical  = "Appropriate Technical Detail Balance"
	DimensionFactual    = "Factual Grounding / No Hallucinations"
	DimensionPhaseMatch = "Phase Appropriateness"
)

// Dimensions lists the judge dimensions in rubric order.
var Dimensions = []string{DimensionClarity, DimensionTone, DimensionTechnical, DimensionFactual, DimensionPhaseMatch}

// DimensionWeights sums to 1.0.
var DimensionWeights = map[string]float64{
	DimensionClarity:    0.25,
	DimensionTone:       0.20,
	DimensionTechnical:  0.15,
	DimensionFactual:    0.30,
	DimensionPhaseMatch: 0.10,
}

// DefaultWeight applies to any dimension name not in DimensionWeights.
const DefaultWeight = 0.20

const (
	PassThreshold    = 0.8
	WarningThreshold = 0.6
)

// Legacy per-check scores.
const (
	LegacyPassScore    = 1.0
	LegacyWarningScore = 0.7
	LegacyFailScore    = 0.3
)

// WeightFor returns the weight of a dimension.
func WeightFor(dimension string) float64 {
	if w, ok := DimensionWeights[dimension]; ok {
		return w
	}
	return DefaultWeight
}

// StatusFor maps a score to pass / warning / fail.
func StatusFor(score float64) string {
	switch {
	case score >= PassThreshold:
		return model.StatusPass
	case score >= WarningThreshold:
		return model.StatusWarning
	default:
		return model.StatusFail
	}
}

// LevelFor maps a score to High / Medium / Low.
func LevelFor(score float64) string {
	switch {
	case score >= PassThreshold:
		return model.LevelHigh
	case score >= WarningThreshold:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// WeightedScore sums weight*score over the given dimensions, rounded to two decimals.
// Missing dimensions contribute nothing.
func WeightedScore(dimensions []model.LLMJudgeDimension) float64 {
	var sum float64
	for _, d := range dimensions {
		sum += d.Score * WeightFor(d.Dimension)
	}
	return Round2(sum)
}

// LegacyScore maps a check status to its legacy score.
func LegacyScore(status string) float64 {
	switch status {
	case model.StatusPass:
		return LegacyPassScore
	case model.StatusWarning:
		return LegacyWarningScore
	default:
		return LegacyFailScore
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
