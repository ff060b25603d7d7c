package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	awismocks "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/mocks"
	"github.com/vfg2006/webinfo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/webinfo-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func trackedDomain(id int, name string) *domain.TrackedDomain {
	return &domain.TrackedDomain{ID: id, Name: name, Active: true}
}

func historyDays(start time.Time, total int) []awisdomain.TrafficHistoryDay {
	days := make([]awisdomain.TrafficHistoryDay, 0, total)
	for i := 0; i < total; i++ {
		days = append(days, awisdomain.TrafficHistoryDay{
			Date: start.AddDate(0, 0, i),
			Rank: intPtr(100 + i),
		})
	}
	return days
}

func newTestSyncService(
	domainRepo *mocks.MockTrackedDomainRepository,
	snapshotRepo *mocks.MockTrafficSnapshotRepository,
	integrator *awismocks.MockIntegrator,
	lookback int,
) *TrafficSyncService {
	return &TrafficSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: TrafficSyncConfig{
			CronSchedule: "0 3 * * *",
			LookbackDays: lookback,
			SyncEnabled:  true,
		},
		domainRepo:   domainRepo,
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
	}
}

func TestTrafficSyncService_syncAllTrackedDomains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -7)

	tests := []struct {
		name  string
		setup func(
			domainRepo *mocks.MockTrackedDomainRepository,
			snapshotRepo *mocks.MockTrafficSnapshotRepository,
			integrator *awismocks.MockIntegrator,
		)
	}{
		{
			name: "Sincroniza todos os domínios ativos e grava os snapshots",
			setup: func(
				domainRepo *mocks.MockTrackedDomainRepository,
				snapshotRepo *mocks.MockTrafficSnapshotRepository,
				integrator *awismocks.MockIntegrator,
			) {
				domainRepo.EXPECT().ListActive().Return([]*domain.TrackedDomain{
					trackedDomain(1, "reddit.com"),
					trackedDomain(2, "wikipedia.org"),
				}, nil)

				integrator.EXPECT().
					GetTrafficHistory(gomock.Any(), awis.TrafficHistoryQuery{Domain: "reddit.com", Range: 7}).
					Return(&awisdomain.TrafficHistoryResult{Site: "reddit.com", Days: historyDays(start, 7)}, nil)

				integrator.EXPECT().
					GetTrafficHistory(gomock.Any(), awis.TrafficHistoryQuery{Domain: "wikipedia.org", Range: 7}).
					Return(&awisdomain.TrafficHistoryResult{Site: "wikipedia.org", Days: historyDays(start, 7)}, nil)

				// Um upsert por dia, para cada domínio
				snapshotRepo.EXPECT().
					SaveOrUpdateSnapshot(gomock.Any()).
					Return(nil).
					Times(14)
			},
		},
		{
			name: "Erro em um domínio não interrompe os demais",
			setup: func(
				domainRepo *mocks.MockTrackedDomainRepository,
				snapshotRepo *mocks.MockTrafficSnapshotRepository,
				integrator *awismocks.MockIntegrator,
			) {
				domainRepo.EXPECT().ListActive().Return([]*domain.TrackedDomain{
					trackedDomain(1, "reddit.com"),
					trackedDomain(2, "wikipedia.org"),
				}, nil)

				integrator.EXPECT().
					GetTrafficHistory(gomock.Any(), awis.TrafficHistoryQuery{Domain: "reddit.com", Range: 7}).
					Return(nil, errors.New("service unavailable"))

				integrator.EXPECT().
					GetTrafficHistory(gomock.Any(), awis.TrafficHistoryQuery{Domain: "wikipedia.org", Range: 7}).
					Return(&awisdomain.TrafficHistoryResult{Site: "wikipedia.org", Days: historyDays(start, 7)}, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdateSnapshot(gomock.Any()).
					Return(nil).
					Times(7)
			},
		},
		{
			name: "Nenhum domínio ativo encerra sem consultar o serviço",
			setup: func(
				domainRepo *mocks.MockTrackedDomainRepository,
				snapshotRepo *mocks.MockTrafficSnapshotRepository,
				integrator *awismocks.MockIntegrator,
			) {
				domainRepo.EXPECT().ListActive().Return(nil, nil)
			},
		},
		{
			name: "Erro ao listar domínios encerra a execução",
			setup: func(
				domainRepo *mocks.MockTrackedDomainRepository,
				snapshotRepo *mocks.MockTrafficSnapshotRepository,
				integrator *awismocks.MockIntegrator,
			) {
				domainRepo.EXPECT().ListActive().Return(nil, errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainRepo := mocks.NewMockTrackedDomainRepository(ctrl)
			snapshotRepo := mocks.NewMockTrafficSnapshotRepository(ctrl)
			integrator := awismocks.NewMockIntegrator(ctrl)

			tt.setup(domainRepo, snapshotRepo, integrator)

			service := newTestSyncService(domainRepo, snapshotRepo, integrator, 7)
			service.syncAllTrackedDomains(context.Background())

			startedAt, completedAt := service.LastSync()
			assert.False(t, startedAt.IsZero())
			assert.False(t, completedAt.IsZero())
		})
	}
}

func TestTrafficSyncService_syncDomain_ErroNoUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	domainRepo := mocks.NewMockTrackedDomainRepository(ctrl)
	snapshotRepo := mocks.NewMockTrafficSnapshotRepository(ctrl)
	integrator := awismocks.NewMockIntegrator(ctrl)

	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -7)

	integrator.EXPECT().
		GetTrafficHistory(gomock.Any(), awis.TrafficHistoryQuery{Domain: "reddit.com", Range: 7}).
		Return(&awisdomain.TrafficHistoryResult{Site: "reddit.com", Days: historyDays(start, 7)}, nil)

	wantErr := errors.New("disk full")
	snapshotRepo.EXPECT().
		SaveOrUpdateSnapshot(gomock.Any()).
		Return(wantErr)

	service := newTestSyncService(domainRepo, snapshotRepo, integrator, 7)

	err := service.syncDomain(context.Background(), "reddit.com", 7)
	assert.ErrorIs(t, err, wantErr)
}

func TestTrafficSyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(
		mocks.NewMockTrackedDomainRepository(ctrl),
		mocks.NewMockTrafficSnapshotRepository(ctrl),
		awismocks.NewMockIntegrator(ctrl),
		7,
	)
	service.config.SyncEnabled = false

	// Desabilitado: Start não agenda nada nem toca nos repositórios
	err := service.Start(context.Background())
	assert.NoError(t, err)
}
