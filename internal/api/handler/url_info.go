package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/awisclient"
	"github.com/vfg2006/webinfo-api/internal/usecases/reporting"
	"github.com/vfg2006/webinfo-api/pkg/apiErrors"
)

// GetURLInfo retorna as informações gerais de um domínio.
// Query param: groups (lista separada por vírgula, opcional)
func GetURLInfo(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domainName := httprouter.ParamsFromContext(r.Context()).ByName("domain")
		if domainName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Domínio não fornecido", nil)
			return
		}

		var groups []string
		if groupsParam := r.URL.Query().Get("groups"); groupsParam != "" {
			for _, group := range strings.Split(groupsParam, ",") {
				if group = strings.TrimSpace(group); group != "" {
					groups = append(groups, group)
				}
			}
		}

		result, err := service.GetURLInfo(r.Context(), domainName, groups)
		if err != nil {
			var groupErr *awisclient.ErrInvalidResponseGroup
			if errors.As(err, &groupErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, groupErr.Error(), nil)
				return
			}

			handleReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
