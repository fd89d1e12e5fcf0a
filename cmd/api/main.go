package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/adpulse/ad-fatigue-api/infrastructure/database/postgres"
	"github.com/adpulse/ad-fatigue-api/infrastructure/integrator/meta"
	"github.com/adpulse/ad-fatigue-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/ad-fatigue-api/infrastructure/repository"
	"github.com/adpulse/ad-fatigue-api/internal/api"
	"github.com/adpulse/ad-fatigue-api/internal/config"
	"github.com/adpulse/ad-fatigue-api/internal/scheduler"
	"github.com/adpulse/ad-fatigue-api/internal/usecases/account"
	"github.com/adpulse/ad-fatigue-api/internal/usecases/authenticating"
	"github.com/adpulse/ad-fatigue-api/internal/usecases/scoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	adMetricRepo := repository.NewAdMetricRepository(pgConn)
	fatigueScoreRepo := repository.NewFatigueScoreRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	accountService := account.NewService(accountRepo, metaIntegrator)

	scoringService := scoring.NewService(
		cfg,
		metaIntegrator,
		accountRepo,
		adMetricRepo,
		fatigueScoreRepo,
	)

	// Inicializa o agendador de sincronização de scores de fadiga
	fatigueSyncService := scheduler.NewFatigueSyncService(
		accountRepo,
		adMetricRepo,
		fatigueScoreRepo,
		scoringService,
		cfg,
	)

	// Inicia o agendador em background
	if err := fatigueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de scores de fadiga")
	} else {
		logrus.Info("Agendador de sincronização de scores de fadiga iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		authenticator,
		scoringService,
		fatigueSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
