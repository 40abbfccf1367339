package scoring

import (
	"testing"

	"github.com/kube-rca/incident-comms/internal/model"
)

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		name string
		dims []model.LLMJudgeDimension
		want float64
	}{
		{
			name: "factual-zero",
			dims: []model.LLMJudgeDimension{
				{Dimension: DimensionClarity, Score: 1.0},
				{Dimension: DimensionTone, Score: 1.0},
				{Dimension: DimensionTechnical, Score: 1.0},
				{Dimension: DimensionFactual, Score: 0.0},
				{Dimension: DimensionPhaseMatch, Score: 1.0},
			},
			want: 0.70,
		},
		{
			name: "all-perfect",
			dims: []model.LLMJudgeDimension{
				{Dimension: DimensionClarity, Score: 1.0},
				{Dimension: DimensionTone, Score: 1.0},
				{Dimension: DimensionTechnical, Score: 1.0},
				{Dimension: DimensionFactual, Score: 1.0},
				{Dimension: DimensionPhaseMatch, Score: 1.0},
			},
			want: 1.0,
		},
		{
			name: "missing-dimensions-contribute-nothing",
			dims: []model.LLMJudgeDimension{
				{Dimension: DimensionFactual, Score: 1.0},
			},
			want: 0.30,
		},
		{
			name: "unknown-dimension-default-weight",
			dims: []model.LLMJudgeDimension{
				{Dimension: "Brevity", Score: 0.5},
			},
			want: 0.10,
		},
		{
			name: "empty",
			dims: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedScore(tt.dims); got != tt.want {
				t.Fatalf("WeightedScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		score      float64
		wantStatus string
		wantLevel  string
	}{
		{1.0, model.StatusPass, model.LevelHigh},
		{0.8, model.StatusPass, model.LevelHigh},
		{0.79, model.StatusWarning, model.LevelMedium},
		{0.6, model.StatusWarning, model.LevelMedium},
		{0.59, model.StatusFail, model.LevelLow},
		{0.0, model.StatusFail, model.LevelLow},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.score); got != tt.wantStatus {
			t.Fatalf("StatusFor(%v) = %s, want %s", tt.score, got, tt.wantStatus)
		}
		if got := LevelFor(tt.score); got != tt.wantLevel {
			t.Fatalf("LevelFor(%v) = %s, want %s", tt.score, got, tt.wantLevel)
		}
	}
}

func TestLegacyScore(t *testing.T) {
	if LegacyScore(model.StatusPass) != 1.0 || LegacyScore(model.StatusWarning) != 0.7 || LegacyScore(model.StatusFail) != 0.3 {
		t.Fatalf("unexpected legacy score mapping")
	}
}
