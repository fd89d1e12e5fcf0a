package fatigue

import (
	"math"
	"testing"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected domain.FatigueStatus
	}{
		{score: 100, expected: domain.FatigueStatusCritical},
		{score: 70, expected: domain.FatigueStatusCritical},
		{score: 69, expected: domain.FatigueStatusWarning},
		{score: 50, expected: domain.FatigueStatusWarning},
		{score: 49, expected: domain.FatigueStatusCaution},
		{score: 30, expected: domain.FatigueStatusCaution},
		{score: 29, expected: domain.FatigueStatusHealthy},
		{score: 0, expected: domain.FatigueStatusHealthy},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StatusForScore(tt.score), "score %d", tt.score)
	}
}

func TestCompositeScorer_CalculateOverallScore(t *testing.T) {
	scorer := NewCompositeScorer()

	t.Run("Registro sem nenhuma estratégia aplicável resulta em zero", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{CTR: -1}

		assert.Equal(t, 0, scorer.CalculateOverallScore(record, nil))
	})

	t.Run("Score geral sempre em [0,100]", func(t *testing.T) {
		records := []*domain.NormalizedAdMetricRecord{
			{Frequency: 50, CTR: 0.01, CPM: 500, Impressions: 1e6, Reach: 100},
			{Frequency: 0.1, CTR: 5, CPM: 1, Impressions: 100, Reach: 99},
			{Frequency: math.NaN(), CTR: math.NaN(), CPM: math.NaN()},
			{},
		}
		baseline := &domain.Baseline{CTR: 0.7, CPM: 30}

		for _, record := range records {
			score := scorer.CalculateOverallScore(record, baseline)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})

	t.Run("Média ponderada do cenário de referência", func(t *testing.T) {
		// Frequência 5.0, CTR 0.5, CPM 40 com baseline {0.7, 30}:
		// frequency ~64.29, ctr_decline ~57.14, cpm_increase 50 e
		// first_time_impression_ratio inaplicável sem impressões/alcance
		record := &domain.NormalizedAdMetricRecord{
			AdID:      "777",
			AdName:    "Criativo fatigado",
			Frequency: 5.0,
			CTR:       0.5,
			CPM:       40,
		}
		baseline := &domain.Baseline{CTR: 0.7, CPM: 30}

		scores := scorer.CalculateIndividualScores(record, baseline)
		assert.InDelta(t, 64.2857, scores["frequency"], 0.01)
		assert.InDelta(t, 57.1429, scores["ctr_decline"], 0.01)
		assert.InDelta(t, 50.0, scores["cpm_increase"], 0.01)
		assert.Equal(t, 0.0, scores["first_time_impression_ratio"])

		// (64.2857*0.4 + 57.1429*0.3 + 50*0.3) / (0.4+0.3+0.3) = 57.86
		assert.Equal(t, 58, scorer.CalculateOverallScore(record, baseline))
	})
}

func TestCompositeScorer_CalculateIndividualScores(t *testing.T) {
	scorer := NewCompositeScorer()

	t.Run("Estratégias inaplicáveis entram com zero, não são omitidas", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{Frequency: 5.0}

		scores := scorer.CalculateIndividualScores(record, nil)

		require.Len(t, scores, 4)
		assert.Contains(t, scores, "frequency")
		assert.Contains(t, scores, "ctr_decline")
		assert.Contains(t, scores, "cpm_increase")
		assert.Contains(t, scores, "first_time_impression_ratio")
		assert.Equal(t, 0.0, scores["cpm_increase"])
		assert.Equal(t, 0.0, scores["first_time_impression_ratio"])
	})

	t.Run("Todo score individual em [0,100]", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{
			Frequency:   100,
			CTR:         0.001,
			CPM:         9999,
			Impressions: 1e7,
			Reach:       10,
		}
		baseline := &domain.Baseline{CTR: 5, CPM: 10}

		for name, score := range scorer.CalculateIndividualScores(record, baseline) {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 100.0, name)
		}
	})
}

func TestCompositeScorer_Score(t *testing.T) {
	scorer := NewCompositeScorer()

	record := &domain.NormalizedAdMetricRecord{
		AdID:      "23850001",
		AdName:    "Criativo A",
		Frequency: 5.0,
		CTR:       0.5,
		CPM:       40,
	}
	baseline := &domain.Baseline{CTR: 0.7, CPM: 30}

	result := scorer.Score(record, baseline)

	require.NotNil(t, result)
	assert.Equal(t, "23850001", result.AdID)
	assert.Equal(t, "Criativo A", result.AdName)
	assert.Equal(t, 58, result.OverallScore)
	assert.Equal(t, domain.FatigueStatusWarning, result.Status)
	assert.Len(t, result.StrategyScores, 4)
	assert.Equal(t, record, result.Metrics)
	assert.False(t, result.ScoredAt.IsZero())
}

func TestCompositeScorer_CustomStrategyList(t *testing.T) {
	// Apenas frequência: o peso é normalizado pela soma dos aplicáveis
	scorer := NewCompositeScorer(NewFrequencyStrategy())

	record := &domain.NormalizedAdMetricRecord{Frequency: 5.0}

	assert.Equal(t, 64, scorer.CalculateOverallScore(record, nil))
	assert.Len(t, scorer.CalculateIndividualScores(record, nil), 1)
}
