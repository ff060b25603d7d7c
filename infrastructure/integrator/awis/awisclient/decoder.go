package awisclient

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
)

// Estruturas intermediárias do documento XML do serviço. Os valores
// numéricos chegam como texto para permitir coerção leniente por campo.
type responseEnvelope struct {
	Errors []wireError `xml:"Response>Errors>Error"`
	Status string      `xml:"Response>ResponseStatus>StatusCode"`
}

type wireError struct {
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

type trafficHistoryDocument struct {
	responseEnvelope
	Site string    `xml:"Response>TrafficHistoryResult>Alexa>TrafficHistory>Site"`
	Days []wireDay `xml:"Response>TrafficHistoryResult>Alexa>TrafficHistory>HistoricalData>Data"`
}

type wireDay struct {
	Date                string `xml:"Date"`
	PageViewsPerMillion string `xml:"PageViews>PerMillion"`
	PageViewsPerUser    string `xml:"PageViews>PerUser"`
	Rank                string `xml:"Rank"`
	ReachPerMillion     string `xml:"Reach>PerMillion"`
}

type urlInfoDocument struct {
	responseEnvelope
	DataURL    string          `xml:"Response>UrlInfoResult>Alexa>ContentData>DataUrl"`
	SiteData   wireSiteData    `xml:"Response>UrlInfoResult>Alexa>ContentData>SiteData"`
	Rank       string          `xml:"Response>UrlInfoResult>Alexa>TrafficData>Rank"`
	UsageStats []wireUsageStat `xml:"Response>UrlInfoResult>Alexa>TrafficData>UsageStatistics>UsageStatistic"`
}

type wireSiteData struct {
	Title       string `xml:"Title"`
	Description string `xml:"Description"`
	OnlineSince string `xml:"OnlineSince"`
}

type wireUsageStat struct {
	TimeRangeMonths     string `xml:"TimeRange>Months"`
	TimeRangeDays       string `xml:"TimeRange>Days"`
	Rank                string `xml:"Rank>Value"`
	ReachPerMillion     string `xml:"Reach>PerMillion>Value"`
	PageViewsPerMillion string `xml:"PageViews>PerMillion>Value"`
	PageViewsPerUser    string `xml:"PageViews>PerUser>Value"`
}

// serviceError extrai o indicador de erro do envelope, se presente. O
// envelope tem precedência sobre qualquer dado parcial no documento.
func (e responseEnvelope) serviceError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	first := e.Errors[0]
	return &awisdomain.ServiceError{Code: first.Code, Message: first.Message}
}

// decodeTrafficHistory converte o corpo bruto da resposta em registros
// tipados. requestedRange é usado apenas para sinalizar resultado parcial.
func decodeTrafficHistory(body []byte, requestedRange int) (*awisdomain.TrafficHistoryResult, error) {
	var doc trafficHistoryDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding traffic history document")
	}

	if err := doc.serviceError(); err != nil {
		return nil, err
	}

	result := &awisdomain.TrafficHistoryResult{
		Site: doc.Site,
		Days: make([]awisdomain.TrafficHistoryDay, 0, len(doc.Days)),
	}

	for _, entry := range doc.Days {
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(entry.Date))
		if err != nil {
			// Data inválida é falha estrutural: sem ela o registro não é
			// identificável.
			return nil, errors.Wrapf(err, "invalid date %q in day entry", entry.Date)
		}

		day := awisdomain.TrafficHistoryDay{Date: date}
		dateStr := date.Format(time.DateOnly)

		day.PageViewsPerMillion = coerceInt(entry.PageViewsPerMillion, "PageViews.PerMillion", dateStr, &result.Diagnostics)
		day.PageViewsPerUser = coerceFloat(entry.PageViewsPerUser, "PageViews.PerUser", dateStr, &result.Diagnostics)
		day.Rank = coerceInt(entry.Rank, "Rank", dateStr, &result.Diagnostics)
		day.ReachPerMillion = coerceInt(entry.ReachPerMillion, "Reach.PerMillion", dateStr, &result.Diagnostics)

		result.Days = append(result.Days, day)
	}

	if requestedRange > 0 && len(result.Days) < requestedRange {
		result.Partial = true
	}

	return result, nil
}

// decodeURLInfo converte a resposta UrlInfo preenchendo apenas os campos dos
// grupos solicitados; elementos fora dos grupos são ignorados.
func decodeURLInfo(body []byte, domainName string, groups []string) (*awisdomain.URLInfoResult, error) {
	var doc urlInfoDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding url info document")
	}

	if err := doc.serviceError(); err != nil {
		return nil, err
	}

	requested := make(map[string]bool, len(groups))
	for _, group := range groups {
		requested[group] = true
	}

	info := &awisdomain.URLInfo{Domain: domainName}
	if doc.DataURL != "" {
		info.Domain = strings.TrimSpace(doc.DataURL)
	}

	result := &awisdomain.URLInfoResult{Info: info}

	if requested[awisdomain.GroupRank] {
		info.Rank = coerceInt(doc.Rank, "Rank", "", &result.Diagnostics)
	}

	if requested[awisdomain.GroupSiteData] {
		if doc.SiteData != (wireSiteData{}) {
			info.SiteData = &awisdomain.SiteData{
				Title:       strings.TrimSpace(doc.SiteData.Title),
				Description: strings.TrimSpace(doc.SiteData.Description),
				OnlineSince: strings.TrimSpace(doc.SiteData.OnlineSince),
			}
		}
	}

	if requested[awisdomain.GroupUsageStats] {
		for _, entry := range doc.UsageStats {
			stat := awisdomain.UsageStat{
				TimeRangeMonths:     coerceInt(entry.TimeRangeMonths, "TimeRange.Months", "", &result.Diagnostics),
				TimeRangeDays:       coerceInt(entry.TimeRangeDays, "TimeRange.Days", "", &result.Diagnostics),
				Rank:                coerceInt(entry.Rank, "UsageStatistic.Rank", "", &result.Diagnostics),
				ReachPerMillion:     coerceInt(entry.ReachPerMillion, "UsageStatistic.Reach.PerMillion", "", &result.Diagnostics),
				PageViewsPerMillion: coerceFloat(entry.PageViewsPerMillion, "UsageStatistic.PageViews.PerMillion", "", &result.Diagnostics),
				PageViewsPerUser:    coerceFloat(entry.PageViewsPerUser, "UsageStatistic.PageViews.PerUser", "", &result.Diagnostics),
			}
			info.UsageStats = append(info.UsageStats, stat)
		}
	}

	return result, nil
}

// coerceInt converte o texto do elemento em inteiro. Ausente ou vazio vira
// nil; malformado vira nil mais um diagnóstico, sem abortar o parse.
func coerceInt(raw, metric, date string, diagnostics *[]awisdomain.FieldError) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	// O serviço usa separador de milhar em alguns campos numéricos
	value, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		*diagnostics = append(*diagnostics, awisdomain.FieldError{Metric: metric, Date: date, Value: raw})
		return nil
	}
	return &value
}

func coerceFloat(raw, metric, date string, diagnostics *[]awisdomain.FieldError) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		*diagnostics = append(*diagnostics, awisdomain.FieldError{Metric: metric, Date: date, Value: raw})
		return nil
	}
	return &value
}
