package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/internal/usecases/reporting"
	"github.com/vfg2006/webinfo-api/pkg/apiErrors"
	"github.com/vfg2006/webinfo-api/pkg/utils"
)

// GetTrafficHistory retorna o histórico de tráfego de um domínio.
// Query params: start (YYYY-MM-DD, opcional), range (dias, opcional) e
// reverse (bool, opcional)
func GetTrafficHistory(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domainName := httprouter.ParamsFromContext(r.Context()).ByName("domain")
		if domainName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Domínio não fornecido", nil)
			return
		}

		query := awis.TrafficHistoryQuery{Domain: domainName}

		start, err := utils.ParseDate(r.URL.Query().Get("start"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		query.Start = start

		if rangeStr := r.URL.Query().Get("range"); rangeStr != "" {
			rangeDays, err := strconv.Atoi(rangeStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Range inválido, informe um número de dias", nil)
				return
			}
			query.Range = rangeDays
		}

		if reverseStr := r.URL.Query().Get("reverse"); reverseStr != "" {
			reverse, err := strconv.ParseBool(reverseStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Reverse inválido, use true ou false", nil)
				return
			}
			query.Reverse = reverse
		}

		report, err := service.GetTrafficHistory(r.Context(), query)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// handleReportError mapeia os erros do integrador para as respostas da API
func handleReportError(w http.ResponseWriter, r *http.Request, err error) {
	var serviceErr *awisdomain.ServiceError
	if errors.As(err, &serviceErr) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, serviceErr.Message, map[string]any{
			"service_code": serviceErr.Code,
		})
		return
	}

	if errors.Is(err, awis.ErrInvalidRange) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	logrus.WithError(err).WithField("path", r.URL.Path).Error("Erro ao consultar o serviço de informações web")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço de informações web", nil)
}
