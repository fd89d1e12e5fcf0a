package scoring

import (
	"time"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// MetricsFetcher define a interface para obter métricas brutas de anúncios
// de uma fonte externa (API do Meta)
type MetricsFetcher interface {
	// GetAdMetrics obtém as métricas no nível de anúncio para uma conta específica
	GetAdMetrics(accountID string, filters *domain.MetricFilters) ([]domain.RawAdMetricRecord, error)
}

// FatigueScorer é a interface do caso de uso de pontuação de fadiga
type FatigueScorer interface {
	// ScoreAccount valida, normaliza e pontua as métricas de todos os anúncios
	// de uma conta em uma data. Um baseline pode ser fornecido pelo chamador;
	// quando nulo, o baseline é estimado a partir do próprio lote.
	ScoreAccount(accountID string, date time.Time, baselineOverride *domain.Baseline) ([]*domain.FatigueScore, error)

	// GetAccountScores retorna os scores persistidos de uma conta em uma data
	GetAccountScores(accountID string, date time.Time) ([]*domain.FatigueScoreEntry, error)

	// ListFatiguedAds retorna os anúncios em warning ou critical em uma data,
	// em todas as contas monitoradas
	ListFatiguedAds(date time.Time) ([]*domain.FatigueScoreEntry, error)
}
