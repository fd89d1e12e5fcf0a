package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adpulse/ad-fatigue-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
)

const adInsightFields = "account_id,account_currency,ad_id,ad_name,campaign_id,clicks,cpc,cpm,ctr,frequency,impressions,publisher_platform,reach,spend"

type ResponseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdInsightsByAccountID busca insights no nível de anúncio (level=ad) de uma conta,
// seguindo a paginação por cursor até esgotar os resultados.
func (c *MetaClient) GetAdInsightsByAccountID(accountID string, filters *domain.MetricFilters) ([]metadomain.AdInsight, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", adInsightFields)
	params.Add("level", "ad")
	params.Add("breakdowns", "publisher_platform")
	params.Add("time_range", timeRange)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	var insights []metadomain.AdInsight

	for requestURL != "" {
		page, next, err := c.fetchAdInsightsPage(requestURL)
		if err != nil {
			// Se o erro indica que o token foi renovado, tentar novamente
			if err.Error() == "token expirado e renovado, por favor tente novamente" {
				return c.GetAdInsightsByAccountID(accountID, filters)
			}
			return nil, err
		}

		insights = append(insights, page...)
		requestURL = next
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"rows":       len(insights),
	}).Debug("insights de anúncio obtidos da API do Meta")

	return insights, nil
}

func (c *MetaClient) fetchAdInsightsPage(requestURL string) ([]metadomain.AdInsight, string, error) {
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, "", err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, "", err
	}

	var response ResponseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, "", err
	}

	return response.Data, response.Paging.Next, nil
}
