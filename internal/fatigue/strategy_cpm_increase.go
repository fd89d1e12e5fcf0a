package fatigue

import (
	"math"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

const (
	// cpmIncreaseGrace é o aumento de custo tolerado antes de penalizar
	cpmIncreaseGrace = 0.2

	// cpmWeakSignalCap limita o score quando só o custo subiu, sem queda de
	// engajamento junto
	cpmWeakSignalCap = 30
)

// CPMIncreaseStrategy pontua o encarecimento da entrega em relação a um CPM
// de referência. Sem baseline não há como comparar: o score é 0 por contrato,
// nunca um erro. Custo subindo junto com engajamento caindo é o padrão
// clássico de penalidade do algoritmo de entrega, e recebe o sinal completo.
type CPMIncreaseStrategy struct {
	weight float64
}

func NewCPMIncreaseStrategy() *CPMIncreaseStrategy {
	return &CPMIncreaseStrategy{weight: 0.3}
}

func (s *CPMIncreaseStrategy) Name() string {
	return "cpm_increase"
}

func (s *CPMIncreaseStrategy) Weight() float64 {
	return s.weight
}

func (s *CPMIncreaseStrategy) IsApplicable(record *domain.NormalizedAdMetricRecord) bool {
	return record != nil && record.CPM > 0
}

func (s *CPMIncreaseStrategy) Calculate(record *domain.NormalizedAdMetricRecord, baseline *domain.Baseline) float64 {
	if baseline == nil || baseline.CPM <= 0 {
		return 0
	}

	increaseRate := (record.CPM - baseline.CPM) / baseline.CPM
	if increaseRate < cpmIncreaseGrace {
		return 0
	}

	if s.ctrAlsoDeclined(record) {
		return math.Min(100, increaseRate*150)
	}

	// Custo subindo sozinho é sinal fraco
	return math.Min(cpmWeakSignalCap, increaseRate*50)
}

// ctrAlsoDeclined verifica se o CTR do registro também caiu 25% ou mais em
// relação ao seu baseline padrão de setor (não ao baseline do lote)
func (s *CPMIncreaseStrategy) ctrAlsoDeclined(record *domain.NormalizedAdMetricRecord) bool {
	base := defaultCTRBaselineFor(record.Placement)
	if base <= 0 || math.IsNaN(record.CTR) {
		return false
	}

	return (base-record.CTR)/base >= ctrDeclineGrace
}
