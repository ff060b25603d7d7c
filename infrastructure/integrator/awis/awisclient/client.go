package awisclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	awisdomain "github.com/vfg2006/webinfo-api/infrastructure/integrator/awis/domain"
	"github.com/vfg2006/webinfo-api/internal/config"
)

// Client é a interface de baixo nível do serviço de informações web: uma
// requisição assinada por chamada, sem retry nem cache.
type Client interface {
	TrafficHistory(ctx context.Context, params TrafficHistoryParams) (*awisdomain.TrafficHistoryResult, error)
	URLInfo(ctx context.Context, domainName string, groups []string) (*awisdomain.URLInfoResult, error)
}

type AWISClient struct {
	httpClient *http.Client
	signer     *Signer
	baseURL    string
}

// NewClient cria um cliente autenticado com as credenciais da configuração.
// As credenciais são imutáveis pelo tempo de vida do cliente.
func NewClient(cfg *config.Config) (Client, error) {
	endpoint, err := url.Parse(cfg.AWIS.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing AWIS base URL")
	}

	path := endpoint.Path
	if path == "" {
		path = ServicePath
	}

	signer := &Signer{
		credentials: Credentials{
			AccessKeyID: cfg.AWIS.AccessKeyID,
			SecretKey:   cfg.AWIS.SecretKey,
		},
		host: endpoint.Host,
		path: path,
		now:  time.Now,
	}

	timeout := time.Duration(cfg.AWIS.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AWISClient{
		httpClient: &http.Client{Timeout: timeout},
		signer:     signer,
		baseURL:    endpoint.Scheme + "://" + endpoint.Host + path,
	}, nil
}

// do executa uma requisição assinada e retorna o corpo bruto. Falhas de
// transporte são propagadas envolvidas, nunca reinterpretadas.
func (c *AWISClient) do(ctx context.Context, signed *SignedRequest) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+signed.Query, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "executing %s request", signed.Operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	// Em caso de status de erro o corpo ainda carrega o envelope de erro do
	// serviço; o decoder o extrai com código e mensagem preservados.
	if resp.StatusCode != http.StatusOK && len(body) == 0 {
		return nil, errors.Errorf("request failed with status %s", resp.Status)
	}

	return body, nil
}
