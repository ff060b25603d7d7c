package awisclient

import (
	"context"
	"strconv"
	"time"

	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
)

// Formato compacto de data exigido pelo parâmetro Start
const startStampFormat = "20060102"

type TrafficHistoryParams struct {
	Domain string
	Start  time.Time
	Range  int
}

// TrafficHistory consulta o histórico de tráfego de um domínio em uma única
// requisição assinada. O serviço aceita no máximo 31 dias por chamada;
// janelas maiores são fatiadas pelo integrador.
func (c *AWISClient) TrafficHistory(ctx context.Context, params TrafficHistoryParams) (*awisdomain.TrafficHistoryResult, error) {
	signed, err := c.signer.Build(OperationTrafficHistory, map[string]string{
		"Url":           params.Domain,
		"Start":         params.Start.Format(startStampFormat),
		"Range":         strconv.Itoa(params.Range),
		"ResponseGroup": "History",
	})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, signed)
	if err != nil {
		return nil, err
	}

	return decodeTrafficHistory(body, params.Range)
}
