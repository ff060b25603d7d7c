package reporting

import (
	"context"

	"github.com/vfg2006/webinfo-api/infrastructure/integrator/awis"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/internal/domain"
)

// Reporter expõe as consultas de tráfego e de informações de domínio
type Reporter interface {
	// GetTrafficHistory retorna o relatório de tráfego da janela solicitada,
	// servindo do cache local os dias já sincronizados e buscando no serviço
	// apenas os trechos ausentes
	GetTrafficHistory(ctx context.Context, query awis.TrafficHistoryQuery) (*domain.TrafficReport, error)

	// GetURLInfo retorna os dados do domínio para os grupos solicitados
	GetURLInfo(ctx context.Context, domainName string, groups []string) (*awisdomain.URLInfoResult, error)
}
