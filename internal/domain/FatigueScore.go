package domain

import (
	"time"
)

// Baseline é o par de referência {CTR, CPM} usado pelas estratégias de
// fadiga para comparar declínio/aumento. É calculado uma vez por lote e
// passado por valor: imutável para as estratégias.
type Baseline struct {
	CTR float64 `json:"ctr"`
	CPM float64 `json:"cpm"`
}

// FatigueStatus classifica o score composto em faixas de severidade
type FatigueStatus string

const (
	FatigueStatusHealthy  FatigueStatus = "healthy"
	FatigueStatusCaution  FatigueStatus = "caution"
	FatigueStatusWarning  FatigueStatus = "warning"
	FatigueStatusCritical FatigueStatus = "critical"
)

// FatigueScore é o resultado composto de fadiga de um anúncio.
// OverallScore e cada entrada de StrategyScores estão sempre em [0,100].
type FatigueScore struct {
	AdID           string                    `json:"ad_id"`
	AdName         string                    `json:"ad_name"`
	AccountID      string                    `json:"account_id"`
	OverallScore   int                       `json:"overall_score"`
	Status         FatigueStatus             `json:"status"`
	StrategyScores map[string]float64        `json:"strategy_scores"`
	Metrics        *NormalizedAdMetricRecord `json:"metrics"`
	ScoredAt       time.Time                 `json:"scored_at"`
}

// FatigueScoreEntry representa um score de fadiga armazenado no banco
type FatigueScoreEntry struct {
	ID        int64         `json:"id"`
	AccountID string        `json:"account_id"`
	AdID      string        `json:"ad_id"`
	Date      time.Time     `json:"date"`
	Score     *FatigueScore `json:"score"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
