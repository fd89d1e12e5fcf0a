package fatigue

import (
	"math"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// OverexposureFrequency é o limite documentado de superexposição: em média
// 3.5 exibições por usuário no período.
const OverexposureFrequency = 3.5

// FrequencyStrategy pontua a superexposição da audiência. Não precisa de
// baseline: abaixo do limite de 3.5 o score é 0; acima, cresce linearmente e
// satura em 100 por volta de frequência 5.83.
type FrequencyStrategy struct {
	weight float64
}

func NewFrequencyStrategy() *FrequencyStrategy {
	return &FrequencyStrategy{weight: 0.4}
}

func (s *FrequencyStrategy) Name() string {
	return "frequency"
}

func (s *FrequencyStrategy) Weight() float64 {
	return s.weight
}

func (s *FrequencyStrategy) IsApplicable(record *domain.NormalizedAdMetricRecord) bool {
	return record != nil && record.Frequency > 0
}

func (s *FrequencyStrategy) Calculate(record *domain.NormalizedAdMetricRecord, _ *domain.Baseline) float64 {
	if record.Frequency <= OverexposureFrequency {
		return 0
	}

	score := (record.Frequency - OverexposureFrequency) / OverexposureFrequency * 150
	return math.Min(100, score)
}
