package fatigue

import (
	"math"
	"testing"
	"time"

	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNormalizationConfig() config.Normalization {
	return config.Normalization{
		AccountCurrency:        "USD",
		DisplayCurrency:        "BRL",
		ExchangeRates:          map[string]float64{"USD": 5.0},
		PercentageInputFormat:  PercentageFormatPercentage,
		PercentageOutputFormat: PercentageFormatPercentage,
		RoundingPrecision:      2,
	}
}

func TestNormalizer_NormalizeNumericValue(t *testing.T) {
	n := NewNormalizer(testNormalizationConfig())

	tests := []struct {
		name      string
		value     any
		precision int
		expected  float64
		isNaN     bool
	}{
		{
			name:      "String com separador de milhar",
			value:     "1,234.56",
			precision: NoRounding,
			expected:  1234.56,
		},
		{
			name:      "Valor ausente vira zero",
			value:     nil,
			precision: NoRounding,
			expected:  0,
		},
		{
			name:      "String vazia vira zero",
			value:     "",
			precision: NoRounding,
			expected:  0,
		},
		{
			name:      "String não numérica vira NaN, não zero",
			value:     "abc",
			precision: NoRounding,
			isNaN:     true,
		},
		{
			name:      "Float passa direto",
			value:     3.14159,
			precision: NoRounding,
			expected:  3.14159,
		},
		{
			name:      "Inteiro é convertido",
			value:     42,
			precision: NoRounding,
			expected:  42,
		},
		{
			name:      "Arredondamento half-up para cima no meio exato",
			value:     0.125,
			precision: 2,
			expected:  0.13,
		},
		{
			name:      "Arredondamento para baixo quando abaixo do meio",
			value:     "2.344",
			precision: 2,
			expected:  2.34,
		},
		{
			name:      "Arredondamento half-up mantém valor exato",
			value:     1.22,
			precision: 2,
			expected:  1.22,
		},
		{
			name:      "NaN sobrevive ao arredondamento",
			value:     "not-a-number",
			precision: 2,
			isNaN:     true,
		},
		{
			name:      "Tipo não suportado vira NaN",
			value:     []string{"1"},
			precision: NoRounding,
			isNaN:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.NormalizeNumericValue(tt.value, tt.precision)

			if tt.isNaN {
				assert.True(t, math.IsNaN(got))
				return
			}

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizer_Validate(t *testing.T) {
	n := NewNormalizer(testNormalizationConfig())

	t.Run("Registro completo é válido e totalmente normalizado", func(t *testing.T) {
		record := &domain.RawAdMetricRecord{
			AdID:        "23850001",
			AdName:      "Campanha Inverno - Criativo A",
			Placement:   "instagram",
			Impressions: "12,500",
			Clicks:      "340",
			Spend:       "150.75",
			Reach:       "8000",
			Frequency:   "1.56",
			CTR:         "2.72",
			CPM:         "12.06",
			CPC:         "0.44",
			Currency:    "BRL",
		}

		result := n.Validate(record)

		require.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
		require.NotNil(t, result.NormalizedData)
		assert.Equal(t, "23850001", result.NormalizedData.AdID)
		assert.Equal(t, 12500.0, result.NormalizedData.Impressions)
		assert.Equal(t, 340.0, result.NormalizedData.Clicks)
		assert.Equal(t, 150.75, result.NormalizedData.Spend)
		assert.Equal(t, 2.72, result.NormalizedData.CTR)
		assert.Equal(t, "BRL", result.NormalizedData.Currency)
	})

	t.Run("ad_id ausente gera erro estrutural", func(t *testing.T) {
		record := &domain.RawAdMetricRecord{AdName: "Sem ID"}

		result := n.Validate(record)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "campo obrigatório ausente: ad_id")
		// A normalização completa mesmo com erro
		require.NotNil(t, result.NormalizedData)
		assert.Equal(t, 0.0, result.NormalizedData.Impressions)
	})

	t.Run("ad_name com tipo errado gera erro estrutural", func(t *testing.T) {
		record := &domain.RawAdMetricRecord{AdID: "1", AdName: 1234}

		result := n.Validate(record)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "campo ad_name com tipo inválido: esperado string")
	})

	t.Run("CTR de exatamente 100% não gera warning", func(t *testing.T) {
		record := &domain.RawAdMetricRecord{AdID: "1", AdName: "A", CTR: 100.0}

		result := n.Validate(record)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Warnings)
	})

	t.Run("CTR acima de 100% gera warning mas não invalida", func(t *testing.T) {
		record := &domain.RawAdMetricRecord{AdID: "1", AdName: "A", CTR: 100.01}

		result := n.Validate(record)

		assert.True(t, result.IsValid)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("Frequência de 3.5 não gera warning e 3.6 gera", func(t *testing.T) {
		atThreshold := n.Validate(&domain.RawAdMetricRecord{AdID: "1", AdName: "A", Frequency: 3.5})
		aboveThreshold := n.Validate(&domain.RawAdMetricRecord{AdID: "1", AdName: "A", Frequency: 3.6})

		assert.Empty(t, atThreshold.Warnings)
		assert.Len(t, aboveThreshold.Warnings, 1)
		assert.True(t, aboveThreshold.IsValid)
	})

	t.Run("Métrica malformada vira NaN no registro normalizado", func(t *testing.T) {
		record := &domain.RawAdMetricRecord{AdID: "1", AdName: "A", Impressions: "garbage"}

		result := n.Validate(record)

		assert.True(t, result.IsValid)
		assert.True(t, math.IsNaN(result.NormalizedData.Impressions))
	})

	t.Run("Registro nil gera erro e mantém a forma completa", func(t *testing.T) {
		result := n.Validate(nil)

		assert.False(t, result.IsValid)
		require.NotNil(t, result.NormalizedData)
	})

	t.Run("Normalizar um registro já normalizado é no-op", func(t *testing.T) {
		first := n.Validate(&domain.RawAdMetricRecord{
			AdID:        "1",
			AdName:      "A",
			Impressions: "10,000",
			Clicks:      "250",
			Spend:       "99.99",
			Reach:       "7000",
			Frequency:   "1.43",
			CTR:         "2.5",
			CPM:         "10.0",
			CPC:         "0.4",
			Currency:    "BRL",
		})
		require.True(t, first.IsValid)

		normalized := first.NormalizedData
		second := n.Validate(&domain.RawAdMetricRecord{
			AdID:        normalized.AdID,
			AdName:      normalized.AdName,
			Impressions: normalized.Impressions,
			Clicks:      normalized.Clicks,
			Spend:       normalized.Spend,
			Reach:       normalized.Reach,
			Frequency:   normalized.Frequency,
			CTR:         normalized.CTR,
			CPM:         normalized.CPM,
			CPC:         normalized.CPC,
			Currency:    normalized.Currency,
		})

		require.True(t, second.IsValid)
		assert.Equal(t, normalized, second.NormalizedData)
	})
}

func TestNormalizer_ApplyCurrencyConversion(t *testing.T) {
	n := NewNormalizer(testNormalizationConfig())

	tests := []struct {
		name     string
		amount   float64
		from     string
		expected float64
	}{
		{
			name:     "Mesma moeda de exibição é no-op",
			amount:   100,
			from:     "BRL",
			expected: 100,
		},
		{
			name:     "Moeda com taxa configurada é convertida",
			amount:   10,
			from:     "USD",
			expected: 50,
		},
		{
			name:     "Sem taxa configurada retorna o valor sem conversão",
			amount:   77.7,
			from:     "EUR",
			expected: 77.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.ApplyCurrencyConversion(tt.amount, tt.from))
		})
	}
}

func TestNormalizer_NormalizePercentage(t *testing.T) {
	t.Run("Decimal para porcentagem multiplica por 100", func(t *testing.T) {
		cfg := testNormalizationConfig()
		cfg.PercentageInputFormat = PercentageFormatDecimal
		n := NewNormalizer(cfg)

		assert.Equal(t, 2.5, n.NormalizePercentage(0.025))
	})

	t.Run("Porcentagem para decimal divide por 100", func(t *testing.T) {
		cfg := testNormalizationConfig()
		cfg.PercentageOutputFormat = PercentageFormatDecimal
		n := NewNormalizer(cfg)

		assert.Equal(t, 0.025, n.NormalizePercentage(2.5))
	})

	t.Run("Formatos iguais são no-op", func(t *testing.T) {
		n := NewNormalizer(testNormalizationConfig())

		assert.Equal(t, 2.5, n.NormalizePercentage(2.5))
	})
}

func TestNormalizer_NormalizeDateWithTimezone(t *testing.T) {
	n := NewNormalizer(testNormalizationConfig())

	t.Run("Data ISO-8601 com offset em minutos", func(t *testing.T) {
		got := n.NormalizeDateWithTimezone("2024-06-15T12:00:00Z", -180)

		assert.Equal(t, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), got)
	})

	t.Run("Data simples sem offset", func(t *testing.T) {
		got := n.NormalizeDateWithTimezone("2024-06-15", 0)

		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("Entrada não interpretável resulta em time zero, sem pânico", func(t *testing.T) {
		got := n.NormalizeDateWithTimezone("15/06/2024", 60)

		assert.True(t, got.IsZero())
	})
}
