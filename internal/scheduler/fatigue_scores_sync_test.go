package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adpulse/ad-fatigue-api/infrastructure/repository/mocks"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	scoringmocks "github.com/adpulse/ad-fatigue-api/internal/usecases/scoring/mocks"
)

func newTestSyncService(t *testing.T) (*FatigueSyncService, *mocks.MockAccountRepository, *mocks.MockAdMetricRepository, *mocks.MockFatigueScoreRepository, *scoringmocks.MockFatigueScorer) {
	ctrl := gomock.NewController(t)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdMetricRepo := mocks.NewMockAdMetricRepository(ctrl)
	mockScoreRepo := mocks.NewMockFatigueScoreRepository(ctrl)
	mockScorer := scoringmocks.NewMockFatigueScorer(ctrl)

	service := &FatigueSyncService{
		config: FatigueSyncConfig{
			CronSchedule:        "0 5 * * *",
			LookbackDays:        1,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			RetentionDays:       90,
			SyncEnabled:         true,
		},
		accountRepo:      mockAccountRepo,
		adMetricRepo:     mockAdMetricRepo,
		fatigueScoreRepo: mockScoreRepo,
		scoringService:   mockScorer,
	}

	return service, mockAccountRepo, mockAdMetricRepo, mockScoreRepo, mockScorer
}

func TestFatigueSyncService_syncAllFatigueScores(t *testing.T) {
	t.Run("Pontua todas as contas ativas e aplica retenção", func(t *testing.T) {
		service, mockAccountRepo, mockAdMetricRepo, mockScoreRepo, mockScorer := newTestSyncService(t)

		accounts := []*domain.AdAccount{
			{ID: "ACC001", ExternalID: "111", Name: "Conta A", Status: domain.AdAccountStatusActive},
			{ID: "ACC002", ExternalID: "222", Name: "Conta B", Status: domain.AdAccountStatusActive},
		}

		mockAccountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return(accounts, nil)

		mockScorer.EXPECT().
			ScoreAccount("ACC001", gomock.Any(), gomock.Nil()).
			Return([]*domain.FatigueScore{{AdID: "ad_1", OverallScore: 42}}, nil)

		mockScorer.EXPECT().
			ScoreAccount("ACC002", gomock.Any(), gomock.Nil()).
			Return([]*domain.FatigueScore{}, nil)

		mockAdMetricRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(3), nil)

		mockScoreRepo.EXPECT().
			DeleteOlderThan(90).
			Return(int64(5), nil)

		service.syncAllFatigueScores()

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Conta sem external_id é pulada", func(t *testing.T) {
		service, mockAccountRepo, mockAdMetricRepo, mockScoreRepo, mockScorer := newTestSyncService(t)

		accounts := []*domain.AdAccount{
			{ID: "ACC001", ExternalID: "", Name: "Conta sem vínculo", Status: domain.AdAccountStatusActive},
			{ID: "ACC002", ExternalID: "222", Name: "Conta B", Status: domain.AdAccountStatusActive},
		}

		mockAccountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return(accounts, nil)

		// Apenas a conta com external_id é pontuada
		mockScorer.EXPECT().
			ScoreAccount("ACC002", gomock.Any(), gomock.Nil()).
			Return([]*domain.FatigueScore{}, nil)

		mockAdMetricRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
		mockScoreRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)

		service.syncAllFatigueScores()
	})

	t.Run("Erro em uma conta não impede as demais", func(t *testing.T) {
		service, mockAccountRepo, mockAdMetricRepo, mockScoreRepo, mockScorer := newTestSyncService(t)

		accounts := []*domain.AdAccount{
			{ID: "ACC001", ExternalID: "111", Name: "Conta A", Status: domain.AdAccountStatusActive},
			{ID: "ACC002", ExternalID: "222", Name: "Conta B", Status: domain.AdAccountStatusActive},
		}

		mockAccountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return(accounts, nil)

		mockScorer.EXPECT().
			ScoreAccount("ACC001", gomock.Any(), gomock.Nil()).
			Return(nil, assert.AnError)

		mockScorer.EXPECT().
			ScoreAccount("ACC002", gomock.Any(), gomock.Nil()).
			Return([]*domain.FatigueScore{}, nil)

		mockAdMetricRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
		mockScoreRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)

		service.syncAllFatigueScores()
	})

	t.Run("Nenhuma conta ativa encerra sem pontuar", func(t *testing.T) {
		service, mockAccountRepo, _, _, _ := newTestSyncService(t)

		mockAccountRepo.EXPECT().
			ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return([]*domain.AdAccount{}, nil)

		service.syncAllFatigueScores()

		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})
}

func TestFatigueSyncService_getDatesToProcess(t *testing.T) {
	service, _, _, _, _ := newTestSyncService(t)
	service.config.LookbackDays = 3

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	assert.Equal(t, yesterday, dates[0].Format(time.DateOnly))
}

func TestFatigueSyncService_cleanupExpiredData(t *testing.T) {
	t.Run("Retenção desabilitada não toca no banco", func(t *testing.T) {
		service, _, _, _, _ := newTestSyncService(t)
		service.config.RetentionDays = 0

		// Nenhuma expectativa configurada: qualquer chamada falharia o teste
		service.cleanupExpiredData()
	})
}

func TestFatigueSyncService_GetStatus(t *testing.T) {
	service, _, _, _, _ := newTestSyncService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, 90, status["retention_days"])
}
