package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/adpulse/ad-fatigue-api/infrastructure/repository/mocks"
	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/adpulse/ad-fatigue-api/internal/fatigue"
	scoringmocks "github.com/adpulse/ad-fatigue-api/internal/usecases/scoring/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Normalization: config.Normalization{
			AccountCurrency:        "BRL",
			DisplayCurrency:        "BRL",
			ExchangeRates:          map[string]float64{},
			PercentageInputFormat:  fatigue.PercentageFormatPercentage,
			PercentageOutputFormat: fatigue.PercentageFormatPercentage,
			RoundingPrecision:      2,
		},
		FatigueSync: config.FatigueSync{
			MaxConcurrentJobs: 2,
		},
	}
}

func testService(t *testing.T) (*Service, *scoringmocks.MockMetricsFetcher, *mocks.MockAccountRepository, *mocks.MockAdMetricRepository, *mocks.MockFatigueScoreRepository) {
	ctrl := gomock.NewController(t)

	mockFetcher := scoringmocks.NewMockMetricsFetcher(ctrl)
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdMetricRepo := mocks.NewMockAdMetricRepository(ctrl)
	mockScoreRepo := mocks.NewMockFatigueScoreRepository(ctrl)

	cfg := testConfig()
	service := &Service{
		cfg:                    cfg,
		metricsFetcher:         mockFetcher,
		accountRepository:      mockAccountRepo,
		adMetricRepository:     mockAdMetricRepo,
		fatigueScoreRepository: mockScoreRepo,
		normalizer:             fatigue.NewNormalizer(cfg.Normalization),
		scorer:                 fatigue.NewCompositeScorer(),
	}

	return service, mockFetcher, mockAccountRepo, mockAdMetricRepo, mockScoreRepo
}

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "1234567890",
		Name:       "Conta Teste",
		Status:     domain.AdAccountStatusActive,
	}
}

func rawRecord(adID, adName string) *domain.RawAdMetricRecord {
	return &domain.RawAdMetricRecord{
		AdID:        adID,
		AdName:      adName,
		Impressions: "10000",
		Clicks:      "50",
		Spend:       "400.00",
		Reach:       "2000",
		Frequency:   "5.0",
		CTR:         "0.5",
		CPM:         "40.0",
		Currency:    "BRL",
	}
}

func TestService_ScoreAccount(t *testing.T) {
	date := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Pontua registros do banco e persiste os scores", func(t *testing.T) {
		service, _, mockAccountRepo, mockAdMetricRepo, mockScoreRepo := testService(t)

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(testAccount(), nil)

		mockAdMetricRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return([]*domain.AdMetricEntry{
				{AccountID: "ACC001", AdID: "ad_1", Date: date, Metrics: rawRecord("ad_1", "Anúncio 1")},
			}, nil)

		mockScoreRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		// Baseline do lote: único registro qualificado {CTR: 0.5, CPM: 40}.
		// Frequência 5.0 dispara superexposição; CTR/CPM iguais ao baseline
		// não disparam declínio/aumento.
		scores, err := service.ScoreAccount("ACC001", date, nil)
		require.NoError(t, err)
		require.Len(t, scores, 1)

		assert.Equal(t, "ad_1", scores[0].AdID)
		assert.Equal(t, "Anúncio 1", scores[0].AdName)
		assert.Equal(t, "ACC001", scores[0].AccountID)
		assert.Len(t, scores[0].StrategyScores, 4)
		assert.InDelta(t, 64.2857, scores[0].StrategyScores["frequency"], 0.001)
		assert.Equal(t, 0.0, scores[0].StrategyScores["ctr_decline"])
		assert.Equal(t, 0.0, scores[0].StrategyScores["cpm_increase"])
	})

	t.Run("Baseline do chamador tem precedência sobre o estimado", func(t *testing.T) {
		service, _, mockAccountRepo, mockAdMetricRepo, mockScoreRepo := testService(t)

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(testAccount(), nil)

		mockAdMetricRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return([]*domain.AdMetricEntry{
				{AccountID: "ACC001", AdID: "ad_1", Date: date, Metrics: rawRecord("ad_1", "Anúncio 1")},
			}, nil)

		mockScoreRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		// Com baseline {0.7, 30}: frequência 64.29, declínio de CTR 57.14,
		// aumento de CPM 50 → composto 58, warning.
		scores, err := service.ScoreAccount("ACC001", date, &domain.Baseline{CTR: 0.7, CPM: 30})
		require.NoError(t, err)
		require.Len(t, scores, 1)

		assert.Equal(t, 58, scores[0].OverallScore)
		assert.Equal(t, domain.FatigueStatusWarning, scores[0].Status)
	})

	t.Run("Registro inválido é descartado sem abortar o lote", func(t *testing.T) {
		service, _, mockAccountRepo, mockAdMetricRepo, mockScoreRepo := testService(t)

		invalid := rawRecord("", "Anúncio sem ID")
		invalid.AdID = nil

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(testAccount(), nil)

		mockAdMetricRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return([]*domain.AdMetricEntry{
				{AccountID: "ACC001", AdID: "", Date: date, Metrics: invalid},
				{AccountID: "ACC001", AdID: "ad_2", Date: date, Metrics: rawRecord("ad_2", "Anúncio 2")},
			}, nil)

		mockScoreRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		scores, err := service.ScoreAccount("ACC001", date, nil)
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, "ad_2", scores[0].AdID)
	})

	t.Run("Sem dados no banco busca da API e alimenta o cache", func(t *testing.T) {
		service, mockFetcher, mockAccountRepo, mockAdMetricRepo, mockScoreRepo := testService(t)

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(testAccount(), nil)

		mockAdMetricRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return([]*domain.AdMetricEntry{}, nil)

		mockFetcher.EXPECT().
			GetAdMetrics("1234567890", gomock.Any()).
			Return([]domain.RawAdMetricRecord{*rawRecord("ad_1", "Anúncio 1")}, nil)

		// Data passada vai para o cache
		mockAdMetricRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		mockScoreRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		scores, err := service.ScoreAccount("ACC001", date, nil)
		require.NoError(t, err)
		assert.Len(t, scores, 1)
	})

	t.Run("Conta inexistente retorna erro", func(t *testing.T) {
		service, _, mockAccountRepo, _, _ := testService(t)

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC404").
			Return(nil, nil)

		scores, err := service.ScoreAccount("ACC404", date, nil)
		assert.Nil(t, scores)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("ID de conta vazio retorna erro", func(t *testing.T) {
		service, _, _, _, _ := testService(t)

		scores, err := service.ScoreAccount("", date, nil)
		assert.Nil(t, scores)
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Todos os registros inválidos retorna erro de lote vazio", func(t *testing.T) {
		service, _, mockAccountRepo, mockAdMetricRepo, _ := testService(t)

		invalid := rawRecord("", "Anúncio sem ID")
		invalid.AdID = nil

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(testAccount(), nil)

		mockAdMetricRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return([]*domain.AdMetricEntry{
				{AccountID: "ACC001", AdID: "", Date: date, Metrics: invalid},
			}, nil)

		scores, err := service.ScoreAccount("ACC001", date, nil)
		assert.Nil(t, scores)
		assert.ErrorIs(t, err, ErrNoMetricsFound)
	})

	t.Run("Scores ordenados do mais fatigado para o menos fatigado", func(t *testing.T) {
		service, _, mockAccountRepo, mockAdMetricRepo, mockScoreRepo := testService(t)

		calm := rawRecord("ad_calm", "Anúncio saudável")
		calm.Frequency = "1.2"
		calm.CTR = "0.9"
		calm.CPM = "25.0"

		mockAccountRepo.EXPECT().
			GetAccountByID("ACC001").
			Return(testAccount(), nil)

		mockAdMetricRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return([]*domain.AdMetricEntry{
				{AccountID: "ACC001", AdID: "ad_calm", Date: date, Metrics: calm},
				{AccountID: "ACC001", AdID: "ad_hot", Date: date, Metrics: rawRecord("ad_hot", "Anúncio fatigado")},
			}, nil)

		mockScoreRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil).
			Times(2)

		scores, err := service.ScoreAccount("ACC001", date, &domain.Baseline{CTR: 0.7, CPM: 30})
		require.NoError(t, err)
		require.Len(t, scores, 2)

		assert.Equal(t, "ad_hot", scores[0].AdID)
		assert.GreaterOrEqual(t, scores[0].OverallScore, scores[1].OverallScore)
	})
}

func TestService_GetAccountScores(t *testing.T) {
	date := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Retorna scores persistidos", func(t *testing.T) {
		service, _, _, _, mockScoreRepo := testService(t)

		entries := []*domain.FatigueScoreEntry{
			{AccountID: "ACC001", AdID: "ad_1", Date: date},
		}

		mockScoreRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return(entries, nil)

		result, err := service.GetAccountScores("ACC001", date)
		require.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Erro do banco é envolvido com contexto", func(t *testing.T) {
		service, _, _, _, mockScoreRepo := testService(t)

		mockScoreRepo.EXPECT().
			GetByAccountIDAndDate("ACC001", date).
			Return(nil, errors.New("connection refused"))

		result, err := service.GetAccountScores("ACC001", date)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_ListFatiguedAds(t *testing.T) {
	date := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	service, _, _, _, mockScoreRepo := testService(t)

	mockScoreRepo.EXPECT().
		ListByStatusAndDate([]domain.FatigueStatus{domain.FatigueStatusWarning, domain.FatigueStatusCritical}, date).
		Return([]*domain.FatigueScoreEntry{
			{AccountID: "ACC001", AdID: "ad_hot", Date: date},
		}, nil)

	result, err := service.ListFatiguedAds(date)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
