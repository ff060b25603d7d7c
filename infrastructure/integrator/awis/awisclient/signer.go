package awisclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Operation identifica uma ação suportada do serviço
type Operation string

const (
	OperationTrafficHistory Operation = "TrafficHistory"
	OperationURLInfo        Operation = "UrlInfo"
)

const (
	// Constantes fixas do serviço (host, caminho e versão da API)
	ServiceHost = "awis.amazonaws.com"
	ServicePath = "/api"
	APIVersion  = "2005-07-11"

	signatureMethod  = "HmacSHA256"
	signatureVersion = "2"
	timestampFormat  = "2006-01-02T15:04:05Z"
)

// Parâmetros obrigatórios por operação. Campos vazios ou ausentes fazem a
// construção falhar antes de qualquer interação de rede.
var requiredParams = map[Operation][]string{
	OperationTrafficHistory: {"Url", "Start", "Range", "ResponseGroup"},
	OperationURLInfo:        {"Url", "ResponseGroup"},
}

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrMissingParameter     = errors.New("missing required parameter")
	ErrInvalidEncoding      = errors.New("parameter cannot be encoded")
)

// MissingParameterError indica um parâmetro obrigatório ausente ou vazio
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// EncodingError indica um valor que não pode ser representado na
// codificação de parâmetros do transporte
type EncodingError struct {
	Key string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("parameter %q contains bytes that cannot be encoded", e.Key)
}

func (e *EncodingError) Unwrap() error { return ErrInvalidEncoding }

// Credentials guarda o par de chaves do serviço. A chave secreta nunca é
// logada nem serializada: apenas a assinatura derivada sai do processo.
type Credentials struct {
	AccessKeyID string
	SecretKey   string
}

// SignedRequest é uma requisição autenticada pronta para o transporte
type SignedRequest struct {
	Operation Operation
	Timestamp time.Time
	Signature string
	// Query é a query string canônica com a assinatura anexada
	Query string
	// URL é a requisição completa (https://host/path?query)
	URL string
}

// Signer produz requisições autenticadas e resistentes a replay. É uma
// função pura das entradas mais o relógio: para (params, secret, timestamp)
// idênticos o descritor resultante é idêntico byte a byte.
type Signer struct {
	credentials Credentials
	host        string
	path        string
	now         func() time.Time
}

// NewSigner cria um Signer para o host/caminho fixos do serviço
func NewSigner(credentials Credentials) *Signer {
	return &Signer{
		credentials: credentials,
		host:        ServiceHost,
		path:        ServicePath,
		now:         time.Now,
	}
}

// Build monta a query canônica, calcula a assinatura e retorna a requisição
// completa. Nenhum efeito colateral além da leitura do relógio.
func (s *Signer) Build(operation Operation, params map[string]string) (*SignedRequest, error) {
	if _, ok := requiredParams[operation]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperation, string(operation))
	}

	for _, name := range requiredParams[operation] {
		if params[name] == "" {
			return nil, &MissingParameterError{Name: name}
		}
	}

	timestamp := s.now().UTC().Truncate(time.Second)

	merged := make(map[string]string, len(params)+6)
	for key, value := range params {
		merged[key] = value
	}
	merged["Action"] = string(operation)
	merged["AWSAccessKeyId"] = s.credentials.AccessKeyID
	merged["SignatureMethod"] = signatureMethod
	merged["SignatureVersion"] = signatureVersion
	merged["Timestamp"] = timestamp.Format(timestampFormat)
	merged["Version"] = APIVersion

	// A ordenação lexicográfica das chaves é parte do protocolo: a assinatura
	// é inválida se calculada sobre qualquer outra ordem.
	keys := make([]string, 0, len(merged))
	for key := range merged {
		if !utf8.ValidString(key) || !utf8.ValidString(merged[key]) {
			return nil, &EncodingError{Key: key}
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, percentEncode(key)+"="+percentEncode(merged[key]))
	}
	canonicalQuery := strings.Join(pairs, "&")

	stringToSign := strings.Join([]string{"GET", s.host, s.path, canonicalQuery}, "\n")
	signature := s.sign(stringToSign)

	query := canonicalQuery + "&Signature=" + percentEncode(signature)

	return &SignedRequest{
		Operation: operation,
		Timestamp: timestamp,
		Signature: signature,
		Query:     query,
		URL:       "https://" + s.host + s.path + "?" + query,
	}, nil
}

func (s *Signer) sign(stringToSign string) string {
	mac := hmac.New(sha256.New, []byte(s.credentials.SecretKey))
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// percentEncode aplica a codificação estrita da RFC 3986: caracteres não
// reservados passam intactos e espaço vira %20, nunca +. net/url codifica
// espaço como +, o que invalidaria a assinatura.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
