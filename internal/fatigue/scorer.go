package fatigue

import (
	"math"
	"time"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// Limites de classificação do score composto
const (
	criticalScoreThreshold = 70
	warningScoreThreshold  = 50
	cautionScoreThreshold  = 30
)

// CompositeScorer agrega os scores das estratégias em um score geral de
// fadiga. O score geral é a média dos scores ponderada pelos pesos das
// estratégias que se aplicaram ao registro; sem estratégia aplicável, é 0.
type CompositeScorer struct {
	strategies []Strategy
}

// NewCompositeScorer cria um scorer com a lista de estratégias informada.
// Sem argumentos, usa DefaultStrategies.
func NewCompositeScorer(strategies ...Strategy) *CompositeScorer {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	return &CompositeScorer{strategies: strategies}
}

// CalculateOverallScore calcula o score geral de fadiga em [0,100]
func (c *CompositeScorer) CalculateOverallScore(record *domain.NormalizedAdMetricRecord, baseline *domain.Baseline) int {
	var weightedSum, totalWeight float64

	for _, strategy := range c.strategies {
		if !strategy.IsApplicable(record) {
			continue
		}

		weightedSum += clampScore(strategy.Calculate(record, baseline)) * strategy.Weight()
		totalWeight += strategy.Weight()
	}

	if totalWeight == 0 {
		return 0
	}

	return int(math.Round(weightedSum / totalWeight))
}

// CalculateIndividualScores calcula o score de cada estratégia. Estratégias
// não aplicáveis entram com 0 (não são omitidas), mantendo o formato estável
// para os consumidores.
func (c *CompositeScorer) CalculateIndividualScores(record *domain.NormalizedAdMetricRecord, baseline *domain.Baseline) map[string]float64 {
	scores := make(map[string]float64, len(c.strategies))

	for _, strategy := range c.strategies {
		if !strategy.IsApplicable(record) {
			scores[strategy.Name()] = 0
			continue
		}

		scores[strategy.Name()] = clampScore(strategy.Calculate(record, baseline))
	}

	return scores
}

// Score produz o resultado completo de fadiga de um registro: score geral,
// classificação e scores individuais, com o snapshot das métricas usadas
func (c *CompositeScorer) Score(record *domain.NormalizedAdMetricRecord, baseline *domain.Baseline) *domain.FatigueScore {
	overall := c.CalculateOverallScore(record, baseline)

	score := &domain.FatigueScore{
		OverallScore:   overall,
		Status:         StatusForScore(overall),
		StrategyScores: c.CalculateIndividualScores(record, baseline),
		Metrics:        record,
		ScoredAt:       time.Now().UTC(),
	}

	if record != nil {
		score.AdID = record.AdID
		score.AdName = record.AdName
	}

	return score
}

// StatusForScore classifica um score composto em uma faixa de severidade.
// Função pura: a classificação é uma função de degrau monotônica do score.
func StatusForScore(score int) domain.FatigueStatus {
	switch {
	case score >= criticalScoreThreshold:
		return domain.FatigueStatusCritical
	case score >= warningScoreThreshold:
		return domain.FatigueStatusWarning
	case score >= cautionScoreThreshold:
		return domain.FatigueStatusCaution
	default:
		return domain.FatigueStatusHealthy
	}
}

// clampScore restringe o score de uma estratégia a [0,100]; NaN vira 0
func clampScore(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}

	if score > 100 {
		return 100
	}

	return score
}
