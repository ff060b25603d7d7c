package awis

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/awisclient"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/awisclient/mocks"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/internal/config"
	"go.uber.org/mock/gomock"
)

func daysFrom(start time.Time, total int) []awisdomain.TrafficHistoryDay {
	days := make([]awisdomain.TrafficHistoryDay, 0, total)
	for i := 0; i < total; i++ {
		rank := 100 + i
		days = append(days, awisdomain.TrafficHistoryDay{
			Date: start.AddDate(0, 0, i),
			Rank: &rank,
		})
	}
	return days
}

func TestSplitRange(t *testing.T) {
	start := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		totalDays int
		want      []chunkWindow
	}{
		{
			name:      "Janela dentro do limite vira uma única fatia",
			totalDays: 20,
			want: []chunkWindow{
				{start: start, days: 20},
			},
		},
		{
			name:      "Janela no limite exato não é dividida",
			totalDays: 31,
			want: []chunkWindow{
				{start: start, days: 31},
			},
		},
		{
			name:      "45 dias viram fatias de 31 e 14",
			totalDays: 45,
			want: []chunkWindow{
				{start: start, days: 31},
				{start: start.AddDate(0, 0, 31), days: 14},
			},
		},
		{
			name:      "93 dias viram três fatias completas",
			totalDays: 93,
			want: []chunkWindow{
				{start: start, days: 31},
				{start: start.AddDate(0, 0, 31), days: 31},
				{start: start.AddDate(0, 0, 62), days: 31},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitRange(start, tt.totalDays))
		})
	}
}

func TestResolveWindow(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	t.Run("Range menor que 1 é rejeitado", func(t *testing.T) {
		_, err := ResolveWindow(TrafficHistoryQuery{Domain: "reddit.com", Range: 0})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Início padrão é Range dias atrás", func(t *testing.T) {
		start, err := ResolveWindow(TrafficHistoryQuery{Domain: "reddit.com", Range: 7})
		require.NoError(t, err)
		assert.Equal(t, today.AddDate(0, 0, -7), start)
	})

	t.Run("Reverse desloca a janela para trás do início", func(t *testing.T) {
		explicit := today.AddDate(0, 0, -10)

		start, err := ResolveWindow(TrafficHistoryQuery{
			Domain:  "reddit.com",
			Start:   explicit,
			Range:   7,
			Reverse: true,
		})
		require.NoError(t, err)
		assert.Equal(t, explicit.AddDate(0, 0, -7), start)
	})

	t.Run("Janela que alcança hoje é rejeitada", func(t *testing.T) {
		_, err := ResolveWindow(TrafficHistoryQuery{
			Domain: "reddit.com",
			Start:  today.AddDate(0, 0, -3),
			Range:  7,
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Janela que termina ontem é aceita", func(t *testing.T) {
		start, err := ResolveWindow(TrafficHistoryQuery{
			Domain: "reddit.com",
			Start:  today.AddDate(0, 0, -7),
			Range:  7,
		})
		require.NoError(t, err)
		assert.Equal(t, today.AddDate(0, 0, -7), start)
	})
}

func newTestService(client awisclient.Client) *Service {
	return &Service{
		cfg:           &config.Config{},
		client:        client,
		maxConcurrent: 4,
	}
}

func TestService_GetTrafficHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	t.Run("Janela de 45 dias é fatiada em 31 e 14", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		service := newTestService(mockClient)

		start := today.AddDate(0, 0, -60)

		mockClient.EXPECT().
			TrafficHistory(gomock.Any(), awisclient.TrafficHistoryParams{
				Domain: "reddit.com",
				Start:  start,
				Range:  31,
			}).
			Return(&awisdomain.TrafficHistoryResult{
				Site: "reddit.com",
				Days: daysFrom(start, 31),
			}, nil)

		mockClient.EXPECT().
			TrafficHistory(gomock.Any(), awisclient.TrafficHistoryParams{
				Domain: "reddit.com",
				Start:  start.AddDate(0, 0, 31),
				Range:  14,
			}).
			Return(&awisdomain.TrafficHistoryResult{
				Site: "reddit.com",
				Days: daysFrom(start.AddDate(0, 0, 31), 14),
			}, nil)

		result, err := service.GetTrafficHistory(context.Background(), TrafficHistoryQuery{
			Domain: "reddit.com",
			Start:  start,
			Range:  45,
		})
		require.NoError(t, err)

		assert.Equal(t, "reddit.com", result.Site)
		assert.Len(t, result.Days, 45)
		assert.False(t, result.Partial)

		// A sequência mesclada fica ordenada por data ascendente
		for i := 1; i < len(result.Days); i++ {
			assert.True(t, result.Days[i].Date.After(result.Days[i-1].Date))
		}
	})

	t.Run("Erro em qualquer fatia aborta a consulta", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		service := newTestService(mockClient)

		start := today.AddDate(0, 0, -60)
		wantErr := errors.New("connection reset")

		mockClient.EXPECT().
			TrafficHistory(gomock.Any(), gomock.Any()).
			Return(&awisdomain.TrafficHistoryResult{Site: "reddit.com"}, nil)

		mockClient.EXPECT().
			TrafficHistory(gomock.Any(), gomock.Any()).
			Return(nil, wantErr)

		result, err := service.GetTrafficHistory(context.Background(), TrafficHistoryQuery{
			Domain: "reddit.com",
			Start:  start,
			Range:  45,
		})
		require.Nil(t, result)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("Menos dias que o solicitado marca resultado parcial", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		service := newTestService(mockClient)

		start := today.AddDate(0, 0, -30)

		mockClient.EXPECT().
			TrafficHistory(gomock.Any(), gomock.Any()).
			Return(&awisdomain.TrafficHistoryResult{
				Site: "reddit.com",
				Days: daysFrom(start, 10),
			}, nil)

		result, err := service.GetTrafficHistory(context.Background(), TrafficHistoryQuery{
			Domain: "reddit.com",
			Start:  start,
			Range:  20,
		})
		require.NoError(t, err)

		assert.Len(t, result.Days, 10)
		assert.True(t, result.Partial)
	})

	t.Run("Range inválido não chega ao cliente", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		service := newTestService(mockClient)

		result, err := service.GetTrafficHistory(context.Background(), TrafficHistoryQuery{
			Domain: "reddit.com",
			Range:  -1,
		})
		require.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestService_GetURLInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newTestService(mockClient)

	rank := 9
	mockClient.EXPECT().
		URLInfo(gomock.Any(), "reddit.com", []string{awisdomain.GroupRank}).
		Return(&awisdomain.URLInfoResult{
			Info: &awisdomain.URLInfo{Domain: "reddit.com", Rank: &rank},
		}, nil)

	result, err := service.GetURLInfo(context.Background(), "reddit.com", []string{awisdomain.GroupRank})
	require.NoError(t, err)
	require.NotNil(t, result.Info.Rank)
	assert.Equal(t, 9, *result.Info.Rank)
}
