package scoring

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/adpulse/ad-fatigue-api/infrastructure/repository"
	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/adpulse/ad-fatigue-api/internal/fatigue"
	"github.com/adpulse/ad-fatigue-api/pkg/apiErrors"
)

// Service orquestra o pipeline de fadiga: busca de métricas, validação,
// estimativa de baseline e pontuação composta por anúncio.
type Service struct {
	cfg                    *config.Config
	metricsFetcher         MetricsFetcher
	accountRepository      repository.AccountRepository
	adMetricRepository     repository.AdMetricRepository
	fatigueScoreRepository repository.FatigueScoreRepository
	normalizer             *fatigue.Normalizer
	scorer                 *fatigue.CompositeScorer
}

// NewService cria uma nova instância do serviço de pontuação de fadiga
func NewService(
	cfg *config.Config,
	metricsFetcher MetricsFetcher,
	accountRepo repository.AccountRepository,
	adMetricRepo repository.AdMetricRepository,
	fatigueScoreRepo repository.FatigueScoreRepository,
) FatigueScorer {
	return &Service{
		cfg:                    cfg,
		metricsFetcher:         metricsFetcher,
		accountRepository:      accountRepo,
		adMetricRepository:     adMetricRepo,
		fatigueScoreRepository: fatigueScoreRepo,
		normalizer:             fatigue.NewNormalizer(cfg.Normalization),
		scorer:                 fatigue.NewCompositeScorer(),
	}
}

func (s *Service) ScoreAccount(accountID string, date time.Time, baselineOverride *domain.Baseline) ([]*domain.FatigueScore, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.WithError(err).Error("scoring: error getting account from repository")
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewScoringErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	records, err := s.getAdMetrics(account, date)
	if err != nil {
		return nil, err
	}

	normalized := s.validateBatch(account, records)
	if len(normalized) == 0 {
		return nil, NewScoringErrorWithID(ErrNoMetricsFound, apiErrors.ErrInvalidRequest, accountID, "Nenhum registro válido de métricas para a data")
	}

	// O baseline do chamador tem precedência; caso contrário é estimado
	// a partir do próprio lote.
	baseline := fatigue.CalculateBaselines(normalized)
	if baselineOverride != nil {
		baseline = *baselineOverride
	}

	scores := s.scoreBatch(account, normalized, baseline, date)

	// Ordena do mais fatigado para o menos fatigado
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].OverallScore > scores[j].OverallScore
	})

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"date":       date.Format(time.DateOnly),
		"records":    len(records),
		"scored":     len(scores),
	}).Info("scoring: conta pontuada com sucesso")

	return scores, nil
}

// getAdMetrics busca as métricas brutas do banco e, quando não há dados para
// a data, busca da API do Meta e alimenta o cache.
func (s *Service) getAdMetrics(account *domain.AdAccount, date time.Time) ([]*domain.RawAdMetricRecord, error) {
	entries, err := s.adMetricRepository.GetByAccountIDAndDate(account.ID, date)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("scoring: error getting ad metrics from repository")
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas no banco de dados")
	}

	if len(entries) > 0 {
		records := make([]*domain.RawAdMetricRecord, 0, len(entries))
		for _, entry := range entries {
			records = append(records, entry.Metrics)
		}
		return records, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
		"date":        date.Format(time.DateOnly),
	}).Info("scoring: sem métricas no banco, buscando da API do Meta")

	filters := &domain.MetricFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	fetched, err := s.metricsFetcher.GetAdMetrics(account.ExternalID, filters)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("scoring: error fetching ad metrics from Meta")
		return nil, NewScoringErrorWithID(ErrMetaIntegration, apiErrors.ErrExternalService, account.ID, "Falha ao obter métricas da API do Meta")
	}

	records := make([]*domain.RawAdMetricRecord, 0, len(fetched))
	for i := range fetched {
		record := fetched[i]
		records = append(records, &record)

		adID, _ := record.AdID.(string)
		entry := &domain.AdMetricEntry{
			AccountID: account.ID,
			AdID:      adID,
			Date:      date,
			Metrics:   &record,
		}

		// Dados do dia corrente ainda estão parciais e não vão para o cache
		if date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
			if err := s.adMetricRepository.SaveOrUpdate(entry); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id": account.ID,
					"ad_id":      adID,
				}).Warn("scoring: erro ao salvar métricas no banco de dados")
			}
		}
	}

	return records, nil
}

// validateBatch normaliza os registros brutos e descarta os estruturalmente
// inválidos. Registros inválidos são registrados no log e nunca abortam o lote.
func (s *Service) validateBatch(account *domain.AdAccount, records []*domain.RawAdMetricRecord) []*domain.NormalizedAdMetricRecord {
	normalized := make([]*domain.NormalizedAdMetricRecord, 0, len(records))

	for _, record := range records {
		result := s.normalizer.Validate(record)
		if !result.IsValid {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"errors":     result.Errors,
			}).Warn("scoring: registro inválido descartado")
			continue
		}

		if len(result.Warnings) > 0 {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      result.NormalizedData.AdID,
				"warnings":   result.Warnings,
			}).Debug("scoring: registro válido com warnings de faixa")
		}

		normalized = append(normalized, result.NormalizedData)
	}

	return normalized
}

// scoreBatch pontua os registros em paralelo com concorrência limitada.
// O baseline é compartilhado por valor entre os workers.
func (s *Service) scoreBatch(account *domain.AdAccount, records []*domain.NormalizedAdMetricRecord, baseline domain.Baseline, date time.Time) []*domain.FatigueScore {
	maxConcurrent := s.cfg.FatigueSync.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	var mutex sync.Mutex

	scores := make([]*domain.FatigueScore, 0, len(records))

	for _, record := range records {
		wg.Add(1)

		go func(record *domain.NormalizedAdMetricRecord) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			score := s.scorer.Score(record, &baseline)
			score.AccountID = account.ID

			entry := &domain.FatigueScoreEntry{
				AccountID: account.ID,
				AdID:      score.AdID,
				Date:      date,
				Score:     score,
			}

			if err := s.fatigueScoreRepository.SaveOrUpdate(entry); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id": account.ID,
					"ad_id":      score.AdID,
				}).Warn("scoring: erro ao salvar score no banco de dados")
			}

			mutex.Lock()
			scores = append(scores, score)
			mutex.Unlock()
		}(record)
	}

	wg.Wait()

	return scores
}

func (s *Service) GetAccountScores(accountID string, date time.Time) ([]*domain.FatigueScoreEntry, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	entries, err := s.fatigueScoreRepository.GetByAccountIDAndDate(accountID, date)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("scoring: error getting fatigue scores from repository")
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar scores no banco de dados")
	}

	return entries, nil
}

func (s *Service) ListFatiguedAds(date time.Time) ([]*domain.FatigueScoreEntry, error) {
	statuses := []domain.FatigueStatus{
		domain.FatigueStatusWarning,
		domain.FatigueStatusCritical,
	}

	entries, err := s.fatigueScoreRepository.ListByStatusAndDate(statuses, date)
	if err != nil {
		logrus.WithError(err).Error("scoring: error listing fatigued ads from repository")
		return nil, NewScoringError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar anúncios fatigados")
	}

	return entries, nil
}
