package fatigue

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// NoRounding desabilita o arredondamento em NormalizeNumericValue
const NoRounding = -1

// Formatos de porcentagem aceitos pela configuração de normalização
const (
	PercentageFormatDecimal    = "decimal"    // 0-1
	PercentageFormatPercentage = "percentage" // 0-100
)

// Normalizer valida e normaliza registros brutos de métricas de anúncios.
// Nunca retorna erro nem entra em pânico: toda falha vira dado no
// ValidationResult (erro estrutural, warning de faixa ou NaN).
type Normalizer struct {
	cfg config.Normalization
}

func NewNormalizer(cfg config.Normalization) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// NormalizeNumericValue converte um valor bruto (string, número ou ausente)
// para float64. Strings têm separadores de milhar removidos. Valor ausente ou
// vazio vira 0; string não numérica vira NaN — o chamador distingue os dois
// casos explicitamente. Com precision >= 0, arredonda half-up para a
// quantidade de casas decimais informada.
func (n *Normalizer) NormalizeNumericValue(value any, precision int) float64 {
	result := coerceToFloat(value)

	if precision >= 0 {
		result = roundHalfUp(result, precision)
	}

	return result
}

func coerceToFloat(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}

		// A API do Meta e planilhas exportadas usam vírgula como separador de milhar
		trimmed = strings.ReplaceAll(trimmed, ",", "")

		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return parsed
	default:
		return math.NaN()
	}
}

// roundHalfUp arredonda half-up para a quantidade de casas decimais.
// NaN permanece NaN.
func roundHalfUp(value float64, precision int) float64 {
	if math.IsNaN(value) {
		return value
	}

	factor := math.Pow(10, float64(precision))
	return math.Floor(value*factor+0.5) / factor
}

// Validate valida um registro bruto e produz o registro normalizado.
// Campos de identidade ausentes ou com tipo errado geram erros estruturais;
// valores fora da faixa esperada geram apenas warnings. A normalização é
// sempre completada best-effort, mesmo quando há erros.
func (n *Normalizer) Validate(record *domain.RawAdMetricRecord) *domain.ValidationResult {
	result := &domain.ValidationResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	if record == nil {
		record = &domain.RawAdMetricRecord{}
		result.Errors = append(result.Errors, "registro ausente")
	}

	adID := n.requireStringField(record.AdID, "ad_id", result)
	adName := n.requireStringField(record.AdName, "ad_name", result)

	currency := record.Currency
	if currency == "" {
		currency = n.cfg.AccountCurrency
	}

	normalized := &domain.NormalizedAdMetricRecord{
		AdID:       adID,
		AdName:     adName,
		CampaignID: record.CampaignID,
		AdSetID:    record.AdSetID,
		Placement:  record.Placement,
		DateStart:  record.DateStart,
		DateStop:   record.DateStop,
		Currency:   n.cfg.DisplayCurrency,
	}

	precision := n.cfg.RoundingPrecision

	normalized.Impressions = n.NormalizeNumericValue(record.Impressions, NoRounding)
	normalized.Clicks = n.NormalizeNumericValue(record.Clicks, NoRounding)
	normalized.Reach = n.NormalizeNumericValue(record.Reach, NoRounding)
	normalized.Frequency = n.NormalizeNumericValue(record.Frequency, precision)

	// Campos monetários são convertidos para a moeda de exibição configurada
	normalized.Spend = roundHalfUp(n.ApplyCurrencyConversion(n.NormalizeNumericValue(record.Spend, NoRounding), currency), precision)
	normalized.CPM = roundHalfUp(n.ApplyCurrencyConversion(n.NormalizeNumericValue(record.CPM, NoRounding), currency), precision)
	normalized.CPC = roundHalfUp(n.ApplyCurrencyConversion(n.NormalizeNumericValue(record.CPC, NoRounding), currency), precision)

	// CTR é reconciliado para o formato canônico de porcentagem
	normalized.CTR = roundHalfUp(n.NormalizePercentage(n.NormalizeNumericValue(record.CTR, NoRounding)), precision)

	if normalized.CTR > 100 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("ctr acima de 100%%: %.2f", normalized.CTR))
	}

	if normalized.Frequency > OverexposureFrequency {
		result.Warnings = append(result.Warnings, fmt.Sprintf("frequência acima do limite de superexposição (%.1f): %.2f", OverexposureFrequency, normalized.Frequency))
	}

	result.NormalizedData = normalized
	result.IsValid = len(result.Errors) == 0

	return result
}

// requireStringField valida um campo de identidade obrigatório.
// Ausente e tipo errado são erros distintos.
func (n *Normalizer) requireStringField(value any, field string, result *domain.ValidationResult) string {
	if value == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("campo obrigatório ausente: %s", field))
		return ""
	}

	str, ok := value.(string)
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("campo %s com tipo inválido: esperado string", field))
		return ""
	}

	if strings.TrimSpace(str) == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("campo obrigatório ausente: %s", field))
		return ""
	}

	return str
}

// ApplyCurrencyConversion converte um valor monetário para a moeda de
// exibição usando a taxa estática configurada. Sem taxa configurada para a
// moeda de origem, o valor é retornado sem conversão (fail-open intencional:
// chamadores dependem desse comportamento).
func (n *Normalizer) ApplyCurrencyConversion(amount float64, fromCurrency string) float64 {
	if fromCurrency == n.cfg.DisplayCurrency {
		return amount
	}

	rate, ok := n.cfg.ExchangeRates[strings.ToUpper(fromCurrency)]
	if !ok {
		return amount
	}

	return amount * rate
}

// NormalizePercentage reconcilia a representação decimal (0-1) com a de
// porcentagem (0-100) conforme os formatos de entrada/saída configurados.
// Formatos iguais são no-op.
func (n *Normalizer) NormalizePercentage(value float64) float64 {
	in := n.cfg.PercentageInputFormat
	out := n.cfg.PercentageOutputFormat

	switch {
	case in == PercentageFormatDecimal && out == PercentageFormatPercentage:
		return value * 100
	case in == PercentageFormatPercentage && out == PercentageFormatDecimal:
		return value / 100
	default:
		return value
	}
}

// NormalizeDateWithTimezone interpreta uma data ISO-8601 e aplica um
// deslocamento em minutos. Entrada não interpretável resulta no time.Time
// zero — o chamador verifica com IsZero, nunca há erro.
func (n *Normalizer) NormalizeDateWithTimezone(isoString string, offsetMinutes int) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		time.DateOnly,
	}

	var parsed time.Time
	var err error
	for _, layout := range layouts {
		parsed, err = time.Parse(layout, isoString)
		if err == nil {
			return parsed.Add(time.Duration(offsetMinutes) * time.Minute)
		}
	}

	return time.Time{}
}
