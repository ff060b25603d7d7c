package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/infrastructure/database/postgres"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/awisclient"
	"github.com/vfg2006/webinfo-api/infrastructure/repository"
	"github.com/vfg2006/webinfo-api/internal/api"
	"github.com/vfg2006/webinfo-api/internal/config"
	"github.com/vfg2006/webinfo-api/internal/scheduler"
	"github.com/vfg2006/webinfo-api/internal/usecases/authenticating"
	"github.com/vfg2006/webinfo-api/internal/usecases/reporting"
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

	userRepo := repository.NewUserRepository(pgConn)
	trackedDomainRepo := repository.NewTrackedDomainRepository(pgConn)
	trafficSnapshotRepo := repository.NewTrafficSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	awisClient, err := awisclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do serviço de informações web")
	}
	awisIntegrator := awis.New(cfg, awisClient)

	// Inicializa o serviço de relatórios com suporte a cache
	reportService := reporting.NewService(cfg, awisIntegrator)
	cachedReportService := reportService.(*reporting.Service).WithCache(trafficSnapshotRepo)

	trafficSyncService := scheduler.NewTrafficSyncService(
		trackedDomainRepo,
		trafficSnapshotRepo,
		awisIntegrator,
		cfg,
	)

	if err := trafficSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de tráfego")
	} else {
		logrus.Info("Agendador de sincronização de tráfego iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedReportService,
		trackedDomainRepo,
		authenticator,
		trafficSyncService,
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
