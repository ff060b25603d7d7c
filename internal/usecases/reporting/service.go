package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/infrastructure/repository"
	"github.com/vfg2006/webinfo-api/internal/config"
	"github.com/vfg2006/webinfo-api/internal/domain"
	"github.com/vfg2006/webinfo-api/pkg/log"
)

// Grupos consultados quando o chamador não especifica nenhum
var defaultResponseGroups = []string{awisdomain.GroupRank, awisdomain.GroupSiteData}

type Service struct {
	cfg          *config.Config
	integrator   awis.Integrator
	snapshotRepo repository.TrafficSnapshotRepository
}

func NewService(cfg *config.Config, integrator awis.Integrator) Reporter {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// WithCache habilita o cache de snapshots no serviço
func (s *Service) WithCache(snapshotRepo repository.TrafficSnapshotRepository) Reporter {
	s.snapshotRepo = snapshotRepo
	return s
}

// gapWindow é um trecho contíguo da janela ausente no cache
type gapWindow struct {
	start time.Time
	days  int
}

func (s *Service) GetTrafficHistory(ctx context.Context, query awis.TrafficHistoryQuery) (*domain.TrafficReport, error) {
	start, err := awis.ResolveWindow(query)
	if err != nil {
		return nil, err
	}

	// A janela já foi normalizada; daqui em diante a consulta é absoluta
	query.Start = start
	query.Reverse = false

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"domain": query.Domain,
		"range":  query.Range,
	})

	cached, gaps := s.fromCache(query)

	if len(gaps) == 0 && len(cached) == query.Range {
		logger.Debug("Histórico de tráfego servido do cache")

		return &domain.TrafficReport{
			Domain:  query.Domain,
			Start:   start,
			Range:   query.Range,
			Days:    cached,
			Summary: domain.Summarize(cached),
			Source:  domain.ReportSourceCache,
		}, nil
	}

	report := &domain.TrafficReport{
		Domain: query.Domain,
		Start:  start,
		Range:  query.Range,
		Days:   cached,
		Source: domain.ReportSourceService,
	}

	// Apenas os trechos ausentes são buscados no serviço; os dias já
	// sincronizados saem do cache
	for _, gap := range gaps {
		result, err := s.integrator.GetTrafficHistory(ctx, awis.TrafficHistoryQuery{
			Domain: query.Domain,
			Start:  gap.start,
			Range:  gap.days,
		})
		if err != nil {
			return nil, err
		}

		s.saveSnapshots(query.Domain, result.Days, logger)

		report.Days = append(report.Days, result.Days...)
		report.Diagnostics = append(report.Diagnostics, result.Diagnostics...)
		if result.Partial {
			report.Partial = true
		}
	}

	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date.Before(report.Days[j].Date)
	})

	if len(report.Days) < query.Range {
		report.Partial = true
	}

	report.Summary = domain.Summarize(report.Days)

	return report, nil
}

func (s *Service) GetURLInfo(ctx context.Context, domainName string, groups []string) (*awisdomain.URLInfoResult, error) {
	if len(groups) == 0 {
		groups = defaultResponseGroups
	}

	return s.integrator.GetURLInfo(ctx, domainName, groups)
}

// fromCache retorna os dias da janela presentes no cache e os trechos
// contíguos ausentes. Sem cache configurado (ou com o cache indisponível) a
// janela inteira é um único trecho ausente.
func (s *Service) fromCache(query awis.TrafficHistoryQuery) ([]awisdomain.TrafficHistoryDay, []gapWindow) {
	fullWindow := []gapWindow{{start: query.Start, days: query.Range}}

	if s.snapshotRepo == nil {
		return nil, fullWindow
	}

	end := query.Start.AddDate(0, 0, query.Range-1)

	snapshots, err := s.snapshotRepo.GetByDomainAndPeriod(query.Domain, query.Start, end)
	if err != nil {
		log.L.WithError(err).Warn("Erro ao consultar cache de tráfego, consultando o serviço")
		return nil, fullWindow
	}

	byDate := make(map[string]*domain.TrafficSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byDate[snapshot.Date.Format(time.DateOnly)] = snapshot
	}

	var (
		days []awisdomain.TrafficHistoryDay
		gaps []gapWindow
	)

	for i := 0; i < query.Range; i++ {
		date := query.Start.AddDate(0, 0, i)

		snapshot, ok := byDate[date.Format(time.DateOnly)]
		if !ok {
			if len(gaps) > 0 && gaps[len(gaps)-1].start.AddDate(0, 0, gaps[len(gaps)-1].days).Equal(date) {
				gaps[len(gaps)-1].days++
			} else {
				gaps = append(gaps, gapWindow{start: date, days: 1})
			}
			continue
		}

		days = append(days, snapshot.Day())
	}

	return days, gaps
}

func (s *Service) saveSnapshots(domainName string, days []awisdomain.TrafficHistoryDay, logger log.Logger) {
	if s.snapshotRepo == nil {
		return
	}

	for _, day := range days {
		if err := s.snapshotRepo.SaveOrUpdateSnapshot(domain.NewTrafficSnapshot(domainName, day)); err != nil {
			logger.WithError(err).WithField("date", day.Date).Warn("Erro ao salvar snapshot de tráfego no cache")
		}
	}
}
