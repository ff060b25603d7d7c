package awisdomain

import "time"

// TrafficHistoryDay representa as métricas de tráfego de um domínio em um
// único dia. Métricas ausentes na resposta do serviço ficam como nil — nunca
// são convertidas para zero.
type TrafficHistoryDay struct {
	Date                time.Time `json:"date"`
	PageViewsPerMillion *int      `json:"page_views_per_million,omitempty"`
	PageViewsPerUser    *float64  `json:"page_views_per_user,omitempty"`
	Rank                *int      `json:"rank,omitempty"`
	ReachPerMillion     *int      `json:"reach_per_million,omitempty"`
}

// TrafficHistoryResult é o resultado decodificado de uma consulta de
// histórico de tráfego. Partial indica que o serviço retornou menos dias do
// que o solicitado (histórico truncado) — informativo, não é erro.
type TrafficHistoryResult struct {
	Site        string              `json:"site"`
	Days        []TrafficHistoryDay `json:"days"`
	Partial     bool                `json:"partial,omitempty"`
	Diagnostics []FieldError        `json:"diagnostics,omitempty"`
}
