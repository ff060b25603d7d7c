package awisclient

import (
	"context"
	"fmt"
	"strings"

	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
)

// ErrInvalidResponseGroup indica um grupo de resposta desconhecido,
// detectado antes de qualquer interação de rede
type ErrInvalidResponseGroup struct {
	Group string
}

func (e *ErrInvalidResponseGroup) Error() string {
	return fmt.Sprintf("invalid response group %q", e.Group)
}

// URLInfo consulta os dados cadastrais e de ranking de um domínio para os
// grupos de resposta solicitados
func (c *AWISClient) URLInfo(ctx context.Context, domainName string, groups []string) (*awisdomain.URLInfoResult, error) {
	for _, group := range groups {
		if !awisdomain.IsValidResponseGroup(group) {
			return nil, &ErrInvalidResponseGroup{Group: group}
		}
	}

	signed, err := c.signer.Build(OperationURLInfo, map[string]string{
		"Url":           domainName,
		"ResponseGroup": strings.Join(groups, ","),
	})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, signed)
	if err != nil {
		return nil, err
	}

	return decodeURLInfo(body, domainName, groups)
}
