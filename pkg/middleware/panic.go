package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/vfg2006/webinfo-api/pkg/apiErrors"
	"github.com/vfg2006/webinfo-api/pkg/log"
)

// LogPanicMiddleware converte panics em respostas 500, com stack no log
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic": rec,
						"stack": string(debug.Stack()),
						"path":  r.URL.Path,
					}).Error("Panic durante o processamento da requisição")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
