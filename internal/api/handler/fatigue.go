package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/adpulse/ad-fatigue-api/internal/usecases/scoring"
	"github.com/adpulse/ad-fatigue-api/pkg/apiErrors"
	"github.com/adpulse/ad-fatigue-api/pkg/utils"
)

// scoreRequest é o corpo opcional do POST de pontuação. Quando o baseline é
// informado, ele substitui o baseline calculado a partir do próprio lote.
type scoreRequest struct {
	Date     string           `json:"date,omitempty"`
	Baseline *domain.Baseline `json:"baseline,omitempty"`
}

// parseDateParam lê o parâmetro "date" (YYYY-MM-DD). Quando ausente,
// retorna o dia anterior, que é a última data com métricas consolidadas.
func parseDateParam(r *http.Request) (time.Time, error) {
	date, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		return time.Time{}, err
	}

	if date.IsZero() {
		return time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour), nil
	}

	return *date, nil
}

func writeScoringError(w http.ResponseWriter, err error) {
	// Verificar se é um ScoringError para obter detalhes específicos do erro
	var scoringErr *scoring.ScoringError
	if errors.As(err, &scoringErr) {
		apiErrors.WriteError(w, scoringErr.Code, scoringErr.Error(), map[string]interface{}{
			"account_id": scoringErr.AccountID,
		})
		return
	}

	switch {
	case errors.Is(err, scoring.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

	case errors.Is(err, scoring.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)

	case errors.Is(err, scoring.ErrNoMetricsFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhuma métrica de anúncio encontrada para a conta na data informada", nil)

	case errors.Is(err, scoring.ErrMetaIntegration):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao obter métricas do serviço Meta", nil)

	case errors.Is(err, scoring.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar scores no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular fadiga de anúncios", nil)
	}
}

// GetAccountFatigue lista os scores de fadiga persistidos de uma conta em uma data
func GetAccountFatigue(service scoring.FatigueScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		date, err := parseDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		scores, err := service.GetAccountScores(id, date)
		if err != nil {
			logrus.Error("Error fetching fatigue scores:", err)
			writeScoringError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(scores); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ScoreAccountFatigue calcula sob demanda os scores de fadiga de uma conta
func ScoreAccountFatigue(service scoring.FatigueScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ScoreAccountFatigue")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		// O corpo é opcional: data e baseline podem ser omitidos
		var req scoreRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}

		date := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
		if req.Date != "" {
			parsed, err := utils.ParseDate(req.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			date = *parsed
		}

		scores, err := service.ScoreAccount(id, date, req.Baseline)
		if err != nil {
			logrus.Error("Error scoring account fatigue:", err)
			writeScoringError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(scores); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListFatiguedAds lista os anúncios em estado warning ou critical em uma data
func ListFatiguedAds(service scoring.FatigueScorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		date, err := parseDateParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		scores, err := service.ListFatiguedAds(date)
		if err != nil {
			logrus.Error("Error listing fatigued ads:", err)
			writeScoringError(w, err)
			return
		}

		if err := json.NewEncoder(w).Encode(scores); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
