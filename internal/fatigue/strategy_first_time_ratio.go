package fatigue

import (
	"math"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// idealFirstTimeRatio é a fração ideal de impressões que são a primeira
// exposição de um usuário no período
const idealFirstTimeRatio = 0.5

// FirstTimeImpressionRatioStrategy estima a fração de primeiras impressões
// como 1/frequência (frequência = impressões/alcance). Uma razão em colapso
// significa que os mesmos usuários estão revendo o anúncio repetidamente.
type FirstTimeImpressionRatioStrategy struct {
	weight float64
}

func NewFirstTimeImpressionRatioStrategy() *FirstTimeImpressionRatioStrategy {
	return &FirstTimeImpressionRatioStrategy{weight: 0.2}
}

func (s *FirstTimeImpressionRatioStrategy) Name() string {
	return "first_time_impression_ratio"
}

func (s *FirstTimeImpressionRatioStrategy) Weight() float64 {
	return s.weight
}

func (s *FirstTimeImpressionRatioStrategy) IsApplicable(record *domain.NormalizedAdMetricRecord) bool {
	return record != nil && record.Impressions > 0 && record.Reach > 0
}

func (s *FirstTimeImpressionRatioStrategy) Calculate(record *domain.NormalizedAdMetricRecord, _ *domain.Baseline) float64 {
	frequency := record.Frequency
	if frequency <= 0 || math.IsNaN(frequency) {
		// Frequência é derivável quando ausente
		frequency = record.Impressions / record.Reach
	}

	if frequency <= 0 {
		return 0
	}

	estimated := 1 / frequency
	if estimated >= idealFirstTimeRatio {
		return 0
	}

	score := (idealFirstTimeRatio - estimated) / idealFirstTimeRatio * 100
	return math.Min(100, score)
}
