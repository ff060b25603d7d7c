package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/webinfo-api/internal/scheduler"
	"github.com/vfg2006/webinfo-api/pkg/apiErrors"
)

type CronStatusResponse struct {
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

// RunTrafficSync dispara manualmente a sincronização de tráfego
func RunTrafficSync(syncService *scheduler.TrafficSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não configurado", nil)
			return
		}

		logrus.Info("Sincronização de tráfego disparada manualmente")
		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "sync started",
		})
	}
}

// GetCronStatus retorna os horários da última sincronização
func GetCronStatus(syncService *scheduler.TrafficSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não configurado", nil)
			return
		}

		startedAt, completedAt := syncService.LastSync()

		response := CronStatusResponse{}
		if !startedAt.IsZero() {
			response.LastSyncStartedAt = &startedAt
		}
		if !completedAt.IsZero() {
			response.LastSyncCompletedAt = &completedAt
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
		}
	}
}
