package fatigue

import (
	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// Strategy é o contrato comum das estratégias de fadiga. Cada estratégia
// mira um sinal de degradação independente e produz um score em [0,100].
// Os pesos não precisam somar 1: o scorer composto normaliza pela soma dos
// pesos das estratégias aplicáveis.
type Strategy interface {
	// Name identifica a estratégia no mapa de scores individuais
	Name() string

	// Weight é o peso da estratégia no score composto, em (0,1]
	Weight() float64

	// IsApplicable indica se o registro tem os dados que a estratégia precisa
	IsApplicable(record *domain.NormalizedAdMetricRecord) bool

	// Calculate produz o score em [0,100]. O baseline pode ser nil: cada
	// estratégia documenta como reage à ausência de referência.
	Calculate(record *domain.NormalizedAdMetricRecord, baseline *domain.Baseline) float64
}

// DefaultStrategies retorna a lista padrão de estratégias usada pelo scorer
// composto: frequência, declínio de CTR, aumento de CPM e razão de primeiras
// impressões. A lista é passada explicitamente na construção do scorer para
// evitar estado global escondido.
func DefaultStrategies() []Strategy {
	return []Strategy{
		NewFrequencyStrategy(),
		NewCTRDeclineStrategy(),
		NewCPMIncreaseStrategy(),
		NewFirstTimeImpressionRatioStrategy(),
	}
}
