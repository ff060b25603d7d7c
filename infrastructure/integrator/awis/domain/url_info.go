package awisdomain

// Grupos de resposta aceitos pela operação UrlInfo
const (
	GroupRelatedLinks  = "RelatedLinks"
	GroupCategories    = "Categories"
	GroupRank          = "Rank"
	GroupRankByCountry = "RankByCountry"
	GroupUsageStats    = "UsageStats"
	GroupAdultContent  = "AdultContent"
	GroupSpeed         = "Speed"
	GroupLanguage      = "Language"
	GroupOwnedDomains  = "OwnedDomains"
	GroupLinksInCount  = "LinksInCount"
	GroupSiteData      = "SiteData"
)

var validResponseGroups = map[string]struct{}{
	GroupRelatedLinks:  {},
	GroupCategories:    {},
	GroupRank:          {},
	GroupRankByCountry: {},
	GroupUsageStats:    {},
	GroupAdultContent:  {},
	GroupSpeed:         {},
	GroupLanguage:      {},
	GroupOwnedDomains:  {},
	GroupLinksInCount:  {},
	GroupSiteData:      {},
}

// IsValidResponseGroup verifica se o grupo é aceito pelo serviço
func IsValidResponseGroup(group string) bool {
	_, ok := validResponseGroups[group]
	return ok
}

// URLInfo reúne as métricas retornadas pela operação UrlInfo. Apenas os
// campos correspondentes aos grupos solicitados são preenchidos; os demais
// permanecem nil.
type URLInfo struct {
	Domain     string      `json:"domain"`
	Rank       *int        `json:"rank,omitempty"`
	SiteData   *SiteData   `json:"site_data,omitempty"`
	UsageStats []UsageStat `json:"usage_stats,omitempty"`
}

// SiteData contém os dados cadastrais do site (grupo SiteData)
type SiteData struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	OnlineSince string `json:"online_since,omitempty"`
}

// UsageStat é um agregado de uso para uma janela de tempo (grupo UsageStats)
type UsageStat struct {
	TimeRangeMonths     *int     `json:"time_range_months,omitempty"`
	TimeRangeDays       *int     `json:"time_range_days,omitempty"`
	Rank                *int     `json:"rank,omitempty"`
	ReachPerMillion     *int     `json:"reach_per_million,omitempty"`
	PageViewsPerMillion *float64 `json:"page_views_per_million,omitempty"`
	PageViewsPerUser    *float64 `json:"page_views_per_user,omitempty"`
}

// URLInfoResult é o resultado decodificado de uma consulta UrlInfo
type URLInfoResult struct {
	Info        *URLInfo     `json:"info"`
	Diagnostics []FieldError `json:"diagnostics,omitempty"`
}
