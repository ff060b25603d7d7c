package awis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/awisclient"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/internal/config"
)

// MaxRangePerRequest é o limite de dias que o serviço aceita por requisição
const MaxRangePerRequest = 31

// ErrInvalidRange indica uma janela de consulta inválida (range menor que 1
// ou janela que alcança a data de hoje)
var ErrInvalidRange = errors.New("invalid traffic history range")

// TrafficHistoryQuery descreve uma janela de histórico de tráfego.
// Reverse desloca a janela para trás a partir de Start em vez de avançar.
type TrafficHistoryQuery struct {
	Domain  string
	Start   time.Time
	Range   int
	Reverse bool
}

// Integrator é a interface de alto nível sobre o serviço: fatia janelas
// grandes em múltiplas requisições e mescla os resultados em ordem de data.
type Integrator interface {
	GetTrafficHistory(ctx context.Context, query TrafficHistoryQuery) (*awisdomain.TrafficHistoryResult, error)
	GetURLInfo(ctx context.Context, domainName string, groups []string) (*awisdomain.URLInfoResult, error)
}

type Service struct {
	cfg           *config.Config
	client        awisclient.Client
	maxConcurrent int
}

func New(cfg *config.Config, client awisclient.Client) Integrator {
	maxConcurrent := cfg.AWIS.MaxConcurrentRequests
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		cfg:           cfg,
		client:        client,
		maxConcurrent: maxConcurrent,
	}
}

// ResolveWindow normaliza a janela da consulta: aplica o início padrão
// (Range dias atrás), o deslocamento reverso e o limite de data. Janelas que
// alcançam a data de hoje são rejeitadas — o serviço só tem dados fechados.
func ResolveWindow(query TrafficHistoryQuery) (time.Time, error) {
	if query.Range < 1 {
		return time.Time{}, fmt.Errorf("%w: range must be at least 1", ErrInvalidRange)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	start := query.Start
	if start.IsZero() {
		start = today.AddDate(0, 0, -query.Range)
	}
	if query.Reverse {
		start = start.AddDate(0, 0, -query.Range)
	}

	if !start.AddDate(0, 0, query.Range).Before(today.AddDate(0, 0, 1)) {
		return time.Time{}, fmt.Errorf("%w: window cannot reach today's date", ErrInvalidRange)
	}

	return start, nil
}

// GetTrafficHistory busca o histórico de tráfego de um domínio. Janelas
// acima de 31 dias são divididas em fatias e buscadas com concorrência
// limitada; a sequência final fica ordenada por data ascendente.
func (s *Service) GetTrafficHistory(ctx context.Context, query TrafficHistoryQuery) (*awisdomain.TrafficHistoryResult, error) {
	start, err := ResolveWindow(query)
	if err != nil {
		return nil, err
	}

	chunks := splitRange(start, query.Range)

	results := make([]*awisdomain.TrafficHistoryResult, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.maxConcurrent)

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk chunkWindow) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i], errs[i] = s.client.TrafficHistory(ctx, awisclient.TrafficHistoryParams{
				Domain: query.Domain,
				Start:  chunk.start,
				Range:  chunk.days,
			})
		}(i, chunk)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := &awisdomain.TrafficHistoryResult{Site: query.Domain}
	for _, result := range results {
		if result.Site != "" {
			merged.Site = result.Site
		}
		merged.Days = append(merged.Days, result.Days...)
		merged.Diagnostics = append(merged.Diagnostics, result.Diagnostics...)
	}

	sort.Slice(merged.Days, func(i, j int) bool {
		return merged.Days[i].Date.Before(merged.Days[j].Date)
	})

	if len(merged.Days) < query.Range {
		// Histórico truncado é informativo, não é erro
		merged.Partial = true
		logrus.WithFields(logrus.Fields{
			"domain":    query.Domain,
			"requested": query.Range,
			"returned":  len(merged.Days),
		}).Warn("Histórico de tráfego retornado menor que o solicitado")
	}

	return merged, nil
}

// GetURLInfo busca os dados do domínio para os grupos solicitados
func (s *Service) GetURLInfo(ctx context.Context, domainName string, groups []string) (*awisdomain.URLInfoResult, error) {
	return s.client.URLInfo(ctx, domainName, groups)
}

type chunkWindow struct {
	start time.Time
	days  int
}

// splitRange fatia a janela em blocos de no máximo MaxRangePerRequest dias
func splitRange(start time.Time, totalDays int) []chunkWindow {
	var chunks []chunkWindow

	remaining := totalDays
	cursor := start
	for remaining > 0 {
		days := remaining
		if days > MaxRangePerRequest {
			days = MaxRangePerRequest
		}

		chunks = append(chunks, chunkWindow{start: cursor, days: days})
		cursor = cursor.AddDate(0, 0, days)
		remaining -= days
	}

	return chunks
}
