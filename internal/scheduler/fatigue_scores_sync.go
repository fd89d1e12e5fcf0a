package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/adpulse/ad-fatigue-api/infrastructure/repository"
	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/adpulse/ad-fatigue-api/internal/usecases/scoring"
	"github.com/adpulse/ad-fatigue-api/pkg/utils"
)

// FatigueSyncConfig representa a configuração do agendador de scores de fadiga
type FatigueSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// FatigueSyncService gerencia o agendamento e execução da pontuação de fadiga
type FatigueSyncService struct {
	scheduler           *gocron.Scheduler
	config              FatigueSyncConfig
	accountRepo         repository.AccountRepository
	adMetricRepo        repository.AdMetricRepository
	fatigueScoreRepo    repository.FatigueScoreRepository
	scoringService      scoring.FatigueScorer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewFatigueSyncService cria uma nova instância do serviço de sincronização de scores de fadiga
func NewFatigueSyncService(
	accountRepo repository.AccountRepository,
	adMetricRepo repository.AdMetricRepository,
	fatigueScoreRepo repository.FatigueScoreRepository,
	scoringService scoring.FatigueScorer,
	appConfig *config.Config,
) *FatigueSyncService {
	// Criar a configuração com base na config global
	syncConfig := FatigueSyncConfig{
		CronSchedule:        appConfig.FatigueSync.CronSchedule,
		LookbackDays:        appConfig.FatigueSync.LookbackDays,
		RequestDelaySeconds: appConfig.FatigueSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.FatigueSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.FatigueSync.RetentionDays,
		SyncEnabled:         appConfig.FatigueSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de scores de fadiga carregada")

	return &FatigueSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		accountRepo:      accountRepo,
		adMetricRepo:     adMetricRepo,
		fatigueScoreRepo: fatigueScoreRepo,
		scoringService:   scoringService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *FatigueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de scores de fadiga desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de scores de fadiga")

	// Agendar a pontuação diária
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllFatigueScores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de scores de fadiga: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de scores de fadiga")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllFatigueScores pontua todas as contas ativas para o período de lookback
func (s *FatigueSyncService) syncAllFatigueScores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de scores de fadiga já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando pontuação de fadiga para todas as contas ativas")

	// Buscar todas as contas ativas
	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para pontuação de fadiga")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para pontuação de fadiga")
		return
	}

	// Criar datas para processamento
	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para pontuação de fadiga")

	// Pontuar as contas
	s.processFatigueScoresForDates(activeAccounts, dates)

	// Aplicar a política de retenção após a pontuação
	s.cleanupExpiredData()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration_seconds": utils.RoundWithTwoDecimalPlace(duration.Seconds()),
		"accounts":         len(activeAccounts),
		"days":             s.config.LookbackDays,
	}).Info("Pontuação de fadiga concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra contas ativas
func (s *FatigueSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para pontuação de fadiga")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para pontuação de fadiga")

	return activeAccounts, nil
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *FatigueSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// processFatigueScoresForDates pontua cada conta em todas as suas datas
func (s *FatigueSyncService) processFatigueScoresForDates(accounts []*domain.AdAccount, dates []time.Time) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	// Para cada conta, processar todas as datas em sequência
	for _, account := range accounts {
		// Se a conta não tiver external_id, pular
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"external_id":  acc.ExternalID,
				"account_name": acc.Name,
				"total_dates":  len(dates),
			}).Info("Pontuando fadiga da conta")

			s.processAccountForAllDates(acc, dates)
		}(account)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processAccountForAllDates pontua uma conta em todas as datas, da mais antiga à mais recente
func (s *FatigueSyncService) processAccountForAllDates(acc *domain.AdAccount, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processAccountFatigueScores(acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountFatigueScores pontua uma conta em uma data específica
func (s *FatigueSyncService) processAccountFatigueScores(acc *domain.AdAccount, date time.Time) {
	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"external_id":  acc.ExternalID,
		"account_name": acc.Name,
		"date":         date.Format(time.DateOnly),
	}).Info("Pontuando fadiga da conta para a data")

	scores, err := s.scoringService.ScoreAccount(acc.ID, date, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": acc.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao pontuar fadiga da conta para a data")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"external_id": acc.ExternalID,
		"date":        date.Format(time.DateOnly),
		"scored_ads":  len(scores),
	}).Info("Scores de fadiga salvos com sucesso para conta e data")
}

// cleanupExpiredData remove métricas e scores mais antigos que a janela de retenção
func (s *FatigueSyncService) cleanupExpiredData() {
	if s.config.RetentionDays <= 0 {
		return
	}

	metricsDeleted, err := s.adMetricRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar retenção nas métricas de anúncio")
	}

	scoresDeleted, err := s.fatigueScoreRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar retenção nos scores de fadiga")
	}

	logrus.WithFields(logrus.Fields{
		"retention_days":  s.config.RetentionDays,
		"metrics_deleted": metricsDeleted,
		"scores_deleted":  scoresDeleted,
	}).Info("Política de retenção aplicada")
}

// TriggerManualSync inicia manualmente uma pontuação de fadiga
func (s *FatigueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pontuação de fadiga já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando pontuação manual de fadiga")
	go s.syncAllFatigueScores()
}

// GetStatus retorna o status atual do agendador
func (s *FatigueSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
