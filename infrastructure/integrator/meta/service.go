package meta

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/adpulse/ad-fatigue-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/ad-fatigue-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/adpulse/ad-fatigue-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdMetrics busca as métricas no nível de anúncio de uma conta e as converte
// para o formato de registro bruto. Os valores numéricos seguem como strings,
// exatamente como a API retorna; a conversão é responsabilidade do normalizador.
func (s *MetaIntegrator) GetAdMetrics(accountID string, filters *domain.MetricFilters) ([]domain.RawAdMetricRecord, error) {
	insights, err := s.Client.GetAdInsightsByAccountID(accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("metrics: failed to get ad insights from API")
		return nil, errors.Wrapf(err, "erro ao buscar insights de anúncio da conta %s", accountID)
	}

	records := make([]domain.RawAdMetricRecord, 0, len(insights))
	for i := range insights {
		records = append(records, factoryRawAdMetricRecord(&insights[i]))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"records":    len(records),
	}).Debug("metrics: successfully retrieved ad metrics")

	return records, nil
}

func factoryRawAdMetricRecord(insight *metadomain.AdInsight) domain.RawAdMetricRecord {
	return domain.RawAdMetricRecord{
		AdID:        insight.AdID,
		AdName:      insight.AdName,
		CampaignID:  insight.CampaignID,
		Placement:   insight.PublisherPlatform,
		DateStart:   insight.DateStart,
		DateStop:    insight.DateStop,
		Impressions: insight.Impressions,
		Clicks:      insight.Clicks,
		Spend:       insight.Spend,
		Reach:       insight.Reach,
		Frequency:   insight.Frequency,
		CTR:         insight.CTR,
		CPM:         insight.CPM,
		CPC:         insight.CPC,
		Currency:    insight.AccountCurrency,
	}
}

// GetAdAccounts lista todas as contas de anúncio dos business managers
// acessíveis pelo token configurado.
func (s *MetaIntegrator) GetAdAccounts() ([]*domain.AdAccount, error) {
	bms, err := s.getBusinessManagers()
	if err != nil {
		logrus.WithError(err).Error("accounts: failed to get business managers")
		return nil, errors.Wrap(err, "erro ao buscar business managers")
	}

	allAdAccounts := make([]*domain.AdAccount, 0)
	for _, b := range bms {
		logrus.WithFields(logrus.Fields{
			"business_id":   b.ID,
			"business_name": b.Name,
		}).Debug("accounts: fetching ad accounts for business")

		adAccounts, err := s.Client.GetAdAccountsByBusinessID(b.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": b.ID,
				"error":       err.Error(),
			}).Error("accounts: failed to get ad accounts for business")
			continue
		}

		for _, adAccount := range adAccounts {
			allAdAccounts = append(allAdAccounts, &domain.AdAccount{
				ExternalID:          adAccount.ID,
				Name:                adAccount.Name,
				Nickname:            &adAccount.Name,
				Origin:              "meta",
				BusinessManagerID:   b.ID,
				BusinessManagerName: b.Name,
			})
		}
	}

	logrus.WithField("total_accounts", len(allAdAccounts)).Info("accounts: successfully retrieved all ad accounts")

	return allAdAccounts, nil
}

func (s *MetaIntegrator) getBusinessManagers() ([]businessManagerData, error) {
	if err := s.Client.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	url := fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		if strings.Contains(err.Error(), "Error on Request") {
			if refreshErr := s.Client.RefreshToken(); refreshErr != nil {
				return nil, fmt.Errorf("erro ao renovar token: %w", refreshErr)
			}

			url = fmt.Sprintf("%s/me/businesses?limit=100&access_token=%s", s.cfg.Meta.URL, s.cfg.Meta.AccessToken)

			data, err = utils.MakeRequest(url)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	var response struct {
		Data []businessManagerData `json:"data"`
	}
	err = json.Unmarshal(data, &response)
	if err != nil {
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Trace(utils.PrettyJson(response.Data))
	}

	return response.Data, nil
}

type businessManagerData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
