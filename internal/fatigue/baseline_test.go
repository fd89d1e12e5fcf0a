package fatigue

import (
	"testing"

	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBaselines(t *testing.T) {
	tests := []struct {
		name     string
		records  []*domain.NormalizedAdMetricRecord
		expected domain.Baseline
	}{
		{
			name:     "Lote vazio retorna os padrões do setor",
			records:  []*domain.NormalizedAdMetricRecord{},
			expected: domain.Baseline{CTR: 0.7, CPM: 30},
		},
		{
			name:     "Lote nil retorna os padrões do setor",
			records:  nil,
			expected: domain.Baseline{CTR: 0.7, CPM: 30},
		},
		{
			name: "Nenhum registro qualificado retorna os padrões do setor",
			records: []*domain.NormalizedAdMetricRecord{
				{CTR: 0, CPM: 25},
				{CTR: 1.2, CPM: 0},
				nil,
			},
			expected: domain.Baseline{CTR: 0.7, CPM: 30},
		},
		{
			name: "Média aritmética dos registros qualificados",
			records: []*domain.NormalizedAdMetricRecord{
				{CTR: 1.0, CPM: 20},
				{CTR: 2.0, CPM: 40},
			},
			expected: domain.Baseline{CTR: 1.5, CPM: 30},
		},
		{
			name: "Registros sem CTR ou CPM são filtrados da média",
			records: []*domain.NormalizedAdMetricRecord{
				{CTR: 1.0, CPM: 20},
				{CTR: 0, CPM: 100},
				{CTR: 3.0, CPM: 0},
				{CTR: 2.0, CPM: 40},
			},
			expected: domain.Baseline{CTR: 1.5, CPM: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBaselines(tt.records)

			assert.InDelta(t, tt.expected.CTR, got.CTR, 0.0001)
			assert.InDelta(t, tt.expected.CPM, got.CPM, 0.0001)
		})
	}
}
