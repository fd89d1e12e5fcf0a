package domain

import (
	"time"
)

// RawAdMetricRecord representa uma entrada bruta de métricas de um anúncio,
// conforme recebida da API do Meta ou de uma importação. Todo campo numérico
// pode estar ausente ou codificado como string (a API de insights do Meta
// retorna números como strings), por isso os campos usam `any`.
type RawAdMetricRecord struct {
	AdID       any    `json:"ad_id"`
	AdName     any    `json:"ad_name"`
	CampaignID string `json:"campaign_id"`
	AdSetID    string `json:"adset_id"`
	Placement  string `json:"publisher_platform"`
	DateStart  string `json:"date_start"`
	DateStop   string `json:"date_stop"`

	Impressions any `json:"impressions"`
	Clicks      any `json:"clicks"`
	Spend       any `json:"spend"`
	Reach       any `json:"reach"`
	Frequency   any `json:"frequency"`
	CTR         any `json:"ctr"`
	CPM         any `json:"cpm"`
	CPC         any `json:"cpc"`

	Currency string `json:"account_currency"`
}

// NormalizedAdMetricRecord é o mesmo registro com todos os campos numéricos
// convertidos para float64, gasto na moeda de exibição configurada e CTR no
// formato canônico de porcentagem (0-100).
type NormalizedAdMetricRecord struct {
	AdID       string `json:"ad_id"`
	AdName     string `json:"ad_name"`
	CampaignID string `json:"campaign_id"`
	AdSetID    string `json:"adset_id"`
	Placement  string `json:"publisher_platform"`
	DateStart  string `json:"date_start"`
	DateStop   string `json:"date_stop"`

	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Spend       float64 `json:"spend"`
	Reach       float64 `json:"reach"`
	Frequency   float64 `json:"frequency"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`

	Currency string `json:"account_currency"`
}

// ValidationResult é o resultado estruturado da validação de um registro.
// Erros estruturais marcam o registro como inválido; warnings de faixa
// (CTR > 100%, frequência acima do limite) nunca invalidam o registro.
type ValidationResult struct {
	IsValid        bool                      `json:"is_valid"`
	Errors         []string                  `json:"errors"`
	Warnings       []string                  `json:"warnings"`
	NormalizedData *NormalizedAdMetricRecord `json:"normalized_data"`
}

// MetricFilters define o período de consulta de métricas
type MetricFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AdMetricEntry representa uma entrada de métricas brutas de anúncio armazenada no banco
type AdMetricEntry struct {
	ID        int64              `json:"id"`
	AccountID string             `json:"account_id"`
	AdID      string             `json:"ad_id"`
	Date      time.Time          `json:"date"`
	Metrics   *RawAdMetricRecord `json:"metrics"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
