package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/internal/domain"
	"github.com/vfg2006/webinfo-api/pkg/apiErrors"
)

// DomainService expõe o cadastro de domínios acompanhados
type DomainService interface {
	Create(trackedDomain *domain.TrackedDomain) (*domain.TrackedDomain, error)
	GetByName(name string) (*domain.TrackedDomain, error)
	ListActive() ([]*domain.TrackedDomain, error)
}

type CreateDomainRequest struct {
	Name string `json:"name"`
}

// ListTrackedDomains lista os domínios ativos na sincronização diária
func ListTrackedDomains(service DomainService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackedDomains, err := service.ListActive()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar domínios", nil)
			return
		}

		if trackedDomains == nil {
			trackedDomains = []*domain.TrackedDomain{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trackedDomains); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateTrackedDomain cadastra um novo domínio para acompanhamento
func CreateTrackedDomain(service DomainService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDomainRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		name := strings.ToLower(strings.TrimSpace(req.Name))
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do domínio é obrigatório", nil)
			return
		}

		existing, err := service.GetByName(name)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar domínio", nil)
			return
		}

		if existing != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Domínio já cadastrado", map[string]any{
				"id": existing.ID,
			})
			return
		}

		trackedDomain, err := service.Create(&domain.TrackedDomain{
			Name:   name,
			Active: true,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar domínio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(trackedDomain); err != nil {
			logrus.Error(err)
		}
	}
}
