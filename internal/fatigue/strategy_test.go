package fatigue

import (
	"testing"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFrequencyStrategy(t *testing.T) {
	s := NewFrequencyStrategy()

	t.Run("Não aplicável sem frequência", func(t *testing.T) {
		assert.False(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{Frequency: 0}))
		assert.True(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{Frequency: 1.2}))
	})

	tests := []struct {
		name      string
		frequency float64
		expected  float64
	}{
		{
			name:      "No limite de 3.5 o score é zero",
			frequency: 3.5,
			expected:  0,
		},
		{
			name:      "Logo acima do limite o score é positivo",
			frequency: 3.6,
			expected:  (3.6 - 3.5) / 3.5 * 150,
		},
		{
			name:      "Frequência de 5.0",
			frequency: 5.0,
			expected:  (5.0 - 3.5) / 3.5 * 150,
		},
		{
			name:      "Satura em 100 por volta de 5.83",
			frequency: 6.0,
			expected:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &domain.NormalizedAdMetricRecord{Frequency: tt.frequency}
			assert.InDelta(t, tt.expected, s.Calculate(record, nil), 0.0001)
		})
	}

	t.Run("Score nunca decresce com o aumento da frequência", func(t *testing.T) {
		previous := 0.0
		for f := 3.5; f <= 10.0; f += 0.1 {
			score := s.Calculate(&domain.NormalizedAdMetricRecord{Frequency: f}, nil)
			assert.GreaterOrEqual(t, score, previous, "frequência %.1f", f)
			assert.LessOrEqual(t, score, 100.0)
			previous = score
		}
	})
}

func TestCTRDeclineStrategy(t *testing.T) {
	s := NewCTRDeclineStrategy()

	t.Run("Aplicável com CTR zero, não aplicável com CTR negativo", func(t *testing.T) {
		assert.True(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{CTR: 0}))
		assert.False(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{CTR: -1}))
	})

	t.Run("Queda de até 25% do baseline não penaliza", func(t *testing.T) {
		baseline := &domain.Baseline{CTR: 1.0}
		record := &domain.NormalizedAdMetricRecord{CTR: 0.75}

		assert.Equal(t, 0.0, s.Calculate(record, baseline))
	})

	t.Run("Queda além de 25% pontua proporcionalmente", func(t *testing.T) {
		baseline := &domain.Baseline{CTR: 1.0}
		record := &domain.NormalizedAdMetricRecord{CTR: 0.6}

		// declínio de 40% -> 80
		assert.InDelta(t, 80.0, s.Calculate(record, baseline), 0.0001)
	})

	t.Run("Queda de 50% satura em 100", func(t *testing.T) {
		baseline := &domain.Baseline{CTR: 1.0}
		record := &domain.NormalizedAdMetricRecord{CTR: 0.4}

		assert.Equal(t, 100.0, s.Calculate(record, baseline))
	})

	t.Run("Sem baseline externo usa o padrão do setor de 0.7", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{CTR: 0.35}

		// declínio de 50% sobre 0.7 -> 100
		assert.Equal(t, 100.0, s.Calculate(record, nil))
	})

	t.Run("Posicionamento de Reels do Instagram usa baseline de 1.23", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{CTR: 0.7, Placement: "instagram_reels"}

		// declínio de ~43% sobre 1.23
		expected := (1.23 - 0.7) / 1.23 * 200
		assert.InDelta(t, expected, s.Calculate(record, nil), 0.0001)
	})

	t.Run("CTR acima do baseline não pontua", func(t *testing.T) {
		baseline := &domain.Baseline{CTR: 1.0}
		record := &domain.NormalizedAdMetricRecord{CTR: 1.5}

		assert.Equal(t, 0.0, s.Calculate(record, baseline))
	})
}

func TestCPMIncreaseStrategy(t *testing.T) {
	s := NewCPMIncreaseStrategy()

	t.Run("Não aplicável sem CPM", func(t *testing.T) {
		assert.False(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{CPM: 0}))
		assert.True(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{CPM: 15}))
	})

	t.Run("Sem baseline retorna zero por contrato", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{CPM: 50}

		assert.Equal(t, 0.0, s.Calculate(record, nil))
	})

	t.Run("Aumento abaixo de 20% não pontua", func(t *testing.T) {
		baseline := &domain.Baseline{CPM: 30}
		record := &domain.NormalizedAdMetricRecord{CPM: 35, CTR: 2.0}

		assert.Equal(t, 0.0, s.Calculate(record, baseline))
	})

	t.Run("Custo subindo sozinho é sinal fraco, limitado a 30", func(t *testing.T) {
		baseline := &domain.Baseline{CPM: 30}
		// CTR saudável (acima do baseline padrão de 0.7)
		record := &domain.NormalizedAdMetricRecord{CPM: 60, CTR: 2.0}

		assert.Equal(t, 30.0, s.Calculate(record, baseline))
	})

	t.Run("Aumento moderado sem queda de CTR pontua increaseRate*50", func(t *testing.T) {
		baseline := &domain.Baseline{CPM: 30}
		record := &domain.NormalizedAdMetricRecord{CPM: 39, CTR: 2.0}

		// aumento de 30% -> 15
		assert.InDelta(t, 15.0, s.Calculate(record, baseline), 0.0001)
	})

	t.Run("Custo subindo com engajamento caindo recebe o sinal completo", func(t *testing.T) {
		baseline := &domain.Baseline{CPM: 30}
		// CTR 0.5 está 28.6% abaixo do baseline padrão de 0.7
		record := &domain.NormalizedAdMetricRecord{CPM: 40, CTR: 0.5}

		// aumento de 33.3% -> 50
		assert.InDelta(t, 50.0, s.Calculate(record, baseline), 0.01)
	})
}

func TestFirstTimeImpressionRatioStrategy(t *testing.T) {
	s := NewFirstTimeImpressionRatioStrategy()

	t.Run("Aplicável apenas com impressões e alcance", func(t *testing.T) {
		assert.False(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{Impressions: 100}))
		assert.False(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{Reach: 100}))
		assert.True(t, s.IsApplicable(&domain.NormalizedAdMetricRecord{Impressions: 100, Reach: 80}))
	})

	t.Run("Razão estimada acima do ideal não pontua", func(t *testing.T) {
		// frequência 1.25 -> razão estimada 0.8
		record := &domain.NormalizedAdMetricRecord{Impressions: 100, Reach: 80, Frequency: 1.25}

		assert.Equal(t, 0.0, s.Calculate(record, nil))
	})

	t.Run("Razão em colapso pontua proporcionalmente", func(t *testing.T) {
		// frequência 4 -> razão estimada 0.25 -> (0.5-0.25)/0.5*100 = 50
		record := &domain.NormalizedAdMetricRecord{Impressions: 400, Reach: 100, Frequency: 4}

		assert.InDelta(t, 50.0, s.Calculate(record, nil), 0.0001)
	})

	t.Run("Frequência ausente é derivada de impressões/alcance", func(t *testing.T) {
		record := &domain.NormalizedAdMetricRecord{Impressions: 400, Reach: 100}

		assert.InDelta(t, 50.0, s.Calculate(record, nil), 0.0001)
	})
}
