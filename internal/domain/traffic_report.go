package domain

import (
	"time"

	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/pkg/utils"
)

// Fonte dos dados de um relatório de tráfego
const (
	ReportSourceCache   = "cache"
	ReportSourceService = "service"
)

// TrafficReport é a resposta da consulta de histórico de tráfego, com as
// métricas derivadas calculadas sobre os dias retornados
type TrafficReport struct {
	Domain      string                         `json:"domain"`
	Start       time.Time                      `json:"start"`
	Range       int                            `json:"range"`
	Days        []awisdomain.TrafficHistoryDay `json:"days"`
	Partial     bool                           `json:"partial,omitempty"`
	Diagnostics []awisdomain.FieldError        `json:"diagnostics,omitempty"`
	Summary     *TrafficSummary                `json:"summary,omitempty"`
	Source      string                         `json:"source"`
}

// TrafficSummary agrega as métricas da janela consultada. Campos ficam nil
// quando nenhum dia da janela trouxe a métrica correspondente.
type TrafficSummary struct {
	AverageRank            *float64 `json:"average_rank,omitempty"`
	BestRank               *int     `json:"best_rank,omitempty"`
	AverageReachPerMillion *float64 `json:"average_reach_per_million,omitempty"`
}

// Summarize calcula as métricas derivadas de uma sequência de dias
func Summarize(days []awisdomain.TrafficHistoryDay) *TrafficSummary {
	var (
		summary    TrafficSummary
		rankSum    int
		rankCount  int
		reachSum   int
		reachCount int
	)

	for _, day := range days {
		if day.Rank != nil {
			rankSum += *day.Rank
			rankCount++

			if summary.BestRank == nil || *day.Rank < *summary.BestRank {
				rank := *day.Rank
				summary.BestRank = &rank
			}
		}

		if day.ReachPerMillion != nil {
			reachSum += *day.ReachPerMillion
			reachCount++
		}
	}

	if rankCount > 0 {
		avg := utils.RoundWithTwoDecimalPlace(float64(rankSum) / float64(rankCount))
		summary.AverageRank = &avg
	}

	if reachCount > 0 {
		avg := utils.RoundWithTwoDecimalPlace(float64(reachSum) / float64(reachCount))
		summary.AverageReachPerMillion = &avg
	}

	if rankCount == 0 && reachCount == 0 {
		return nil
	}

	return &summary
}
