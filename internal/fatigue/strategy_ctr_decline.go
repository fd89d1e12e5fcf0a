package fatigue

import (
	"math"
	"strings"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

const (
	// instagramReelsCTRBaseline é o CTR de referência do setor para
	// posicionamentos de Reels do Instagram, que convertem acima da média
	instagramReelsCTRBaseline = 1.23

	// ctrDeclineGrace é a queda tolerada antes de penalizar: até 25% abaixo
	// do baseline não há score
	ctrDeclineGrace = 0.25
)

// CTRDeclineStrategy pontua a queda de engajamento em relação a um CTR de
// referência. Sem baseline externo, usa o padrão do setor por posicionamento.
type CTRDeclineStrategy struct {
	weight float64
}

func NewCTRDeclineStrategy() *CTRDeclineStrategy {
	return &CTRDeclineStrategy{weight: 0.3}
}

func (s *CTRDeclineStrategy) Name() string {
	return "ctr_decline"
}

func (s *CTRDeclineStrategy) Weight() float64 {
	return s.weight
}

func (s *CTRDeclineStrategy) IsApplicable(record *domain.NormalizedAdMetricRecord) bool {
	return record != nil && record.CTR >= 0
}

func (s *CTRDeclineStrategy) Calculate(record *domain.NormalizedAdMetricRecord, baseline *domain.Baseline) float64 {
	base := defaultCTRBaselineFor(record.Placement)
	if baseline != nil && baseline.CTR > 0 {
		base = baseline.CTR
	}

	declineRate := (base - record.CTR) / base
	if declineRate <= ctrDeclineGrace {
		return 0
	}

	// Queda de 50% satura o score em 100
	return math.Min(100, declineRate*200)
}

// defaultCTRBaselineFor retorna o CTR de referência do setor para o
// posicionamento informado
func defaultCTRBaselineFor(placement string) float64 {
	p := strings.ToLower(placement)
	if strings.Contains(p, "instagram") && strings.Contains(p, "reels") {
		return instagramReelsCTRBaseline
	}

	return DefaultBaselineCTR
}
