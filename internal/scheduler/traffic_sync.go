package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis"
	"github.com/vfg2006/webinfo-api/infrastructure/repository"
	"github.com/vfg2006/webinfo-api/internal/config"
	"github.com/vfg2006/webinfo-api/internal/domain"
	"github.com/vfg2006/webinfo-api/pkg/utils"
)

// TrafficSyncConfig é a configuração do agendador de sincronização de tráfego
type TrafficSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// TrafficSyncService agenda e executa a sincronização diária do histórico de
// tráfego dos domínios acompanhados para o cache local
type TrafficSyncService struct {
	scheduler           *gocron.Scheduler
	config              TrafficSyncConfig
	domainRepo          repository.TrackedDomainRepository
	snapshotRepo        repository.TrafficSnapshotRepository
	integrator          awis.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewTrafficSyncService(
	domainRepo repository.TrackedDomainRepository,
	snapshotRepo repository.TrafficSnapshotRepository,
	integrator awis.Integrator,
	appConfig *config.Config,
) *TrafficSyncService {
	syncConfig := TrafficSyncConfig{
		CronSchedule:        appConfig.TrafficSync.CronSchedule,
		LookbackDays:        appConfig.TrafficSync.LookbackDays,
		RequestDelaySeconds: appConfig.TrafficSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.TrafficSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de tráfego carregada")

	return &TrafficSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		domainRepo:   domainRepo,
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
	}
}

// Start inicia o agendador e o amarra ao ciclo de vida do contexto
func (s *TrafficSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de tráfego desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de tráfego")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTrackedDomains(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de tráfego: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de tráfego")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado
func (s *TrafficSyncService) TriggerManualSync() {
	go s.syncAllTrackedDomains(context.Background())
}

// syncAllTrackedDomains busca a janela de lookback de cada domínio
// acompanhado e grava os snapshots no cache
func (s *TrafficSyncService) syncAllTrackedDomains(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de tráfego já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	executionID, err := utils.GenerateID()
	if err != nil {
		executionID = "unknown"
	}

	logger := logrus.WithField("execution_id", executionID)
	logger.Info("Iniciando sincronização de tráfego dos domínios acompanhados")

	trackedDomains, err := s.domainRepo.ListActive()
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar domínios acompanhados")
		return
	}

	if len(trackedDomains) == 0 {
		logger.Info("Nenhum domínio acompanhado para sincronizar")
		return
	}

	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	synced := 0
	for i, trackedDomain := range trackedDomains {
		// Intervalo entre requisições para não estourar a cota do serviço
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		if err := s.syncDomain(ctx, trackedDomain.Name, lookback); err != nil {
			logger.WithError(err).WithField("domain", trackedDomain.Name).Error("Erro ao sincronizar domínio")
			continue
		}

		synced++
	}

	logger.WithFields(logrus.Fields{
		"domains": len(trackedDomains),
		"synced":  synced,
	}).Info("Sincronização de tráfego concluída")
}

func (s *TrafficSyncService) syncDomain(ctx context.Context, domainName string, lookback int) error {
	result, err := s.integrator.GetTrafficHistory(ctx, awis.TrafficHistoryQuery{
		Domain: domainName,
		Range:  lookback,
	})
	if err != nil {
		return err
	}

	for _, day := range result.Days {
		if err := s.snapshotRepo.SaveOrUpdateSnapshot(domain.NewTrafficSnapshot(domainName, day)); err != nil {
			return err
		}
	}

	return nil
}

// LastSync retorna os horários da última execução, para o endpoint de status
func (s *TrafficSyncService) LastSync() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
