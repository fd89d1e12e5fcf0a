package fatigue

import (
	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

// Valores de referência do setor usados quando o lote não tem registros
// qualificados para estimar um baseline próprio
const (
	DefaultBaselineCTR = 0.7
	DefaultBaselineCPM = 30.0
)

// CalculateBaselines deriva o par de referência {CTR, CPM} de um lote de
// registros normalizados: a média aritmética sobre os registros com ctr > 0
// e cpm > 0. Sem registros qualificados, retorna os padrões fixos do setor.
// O baseline é recalculado a cada lote — não há memória histórica; um
// chamador que precise de baseline por tendência deve calculá-lo fora e
// passá-lo explicitamente ao scorer.
func CalculateBaselines(records []*domain.NormalizedAdMetricRecord) domain.Baseline {
	var ctrSum, cpmSum float64
	qualifying := 0

	for _, record := range records {
		if record == nil {
			continue
		}

		if record.CTR > 0 && record.CPM > 0 {
			ctrSum += record.CTR
			cpmSum += record.CPM
			qualifying++
		}
	}

	if qualifying == 0 {
		return domain.Baseline{CTR: DefaultBaselineCTR, CPM: DefaultBaselineCPM}
	}

	return domain.Baseline{
		CTR: ctrSum / float64(qualifying),
		CPM: cpmSum / float64(qualifying),
	}
}
