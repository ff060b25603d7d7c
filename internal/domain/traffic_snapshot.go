package domain

import (
	"time"

	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
)

// TrafficSnapshot é um dia de métricas de tráfego persistido no cache local.
// Métricas ausentes permanecem nil, espelhando o contrato do decodificador.
type TrafficSnapshot struct {
	ID                  int       `json:"-"`
	Domain              string    `json:"domain"`
	Date                time.Time `json:"date"`
	PageViewsPerMillion *int      `json:"page_views_per_million,omitempty"`
	PageViewsPerUser    *float64  `json:"page_views_per_user,omitempty"`
	Rank                *int      `json:"rank,omitempty"`
	ReachPerMillion     *int      `json:"reach_per_million,omitempty"`
	SyncedAt            time.Time `json:"synced_at"`
}

// Day converte o snapshot de volta para o registro tipado do integrador
func (s *TrafficSnapshot) Day() awisdomain.TrafficHistoryDay {
	return awisdomain.TrafficHistoryDay{
		Date:                s.Date,
		PageViewsPerMillion: s.PageViewsPerMillion,
		PageViewsPerUser:    s.PageViewsPerUser,
		Rank:                s.Rank,
		ReachPerMillion:     s.ReachPerMillion,
	}
}

// NewTrafficSnapshot cria um snapshot a partir de um registro do serviço
func NewTrafficSnapshot(domainName string, day awisdomain.TrafficHistoryDay) *TrafficSnapshot {
	return &TrafficSnapshot{
		Domain:              domainName,
		Date:                day.Date,
		PageViewsPerMillion: day.PageViewsPerMillion,
		PageViewsPerUser:    day.PageViewsPerUser,
		Rank:                day.Rank,
		ReachPerMillion:     day.ReachPerMillion,
		SyncedAt:            time.Now().UTC(),
	}
}
