package awisclient

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = Credentials{
	AccessKeyID: "AKIDEXAMPLE",
	SecretKey:   "secret-key-example",
}

func fixedClockSigner(t *testing.T) *Signer {
	t.Helper()

	signer := NewSigner(testCredentials)
	signer.now = func() time.Time {
		return time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return signer
}

func TestSigner_Build(t *testing.T) {
	tests := []struct {
		name          string
		operation     Operation
		params        map[string]string
		wantSignature string
		wantQuery     string
	}{
		{
			name:      "TrafficHistory com todos os parâmetros obrigatórios",
			operation: OperationTrafficHistory,
			params: map[string]string{
				"Url":           "reddit.com",
				"Start":         "20170601",
				"Range":         "20",
				"ResponseGroup": "History",
			},
			wantSignature: "yYNcvp2mFOQTLTh0PxvnSkEAJdaSItlWH9yc/U0I/Z8=",
			wantQuery:     "AWSAccessKeyId=AKIDEXAMPLE&Action=TrafficHistory&Range=20&ResponseGroup=History&SignatureMethod=HmacSHA256&SignatureVersion=2&Start=20170601&Timestamp=2017-06-01T00%3A00%3A00Z&Url=reddit.com&Version=2005-07-11&Signature=yYNcvp2mFOQTLTh0PxvnSkEAJdaSItlWH9yc%2FU0I%2FZ8%3D",
		},
		{
			name:      "UrlInfo com múltiplos grupos de resposta",
			operation: OperationURLInfo,
			params: map[string]string{
				"Url":           "reddit.com",
				"ResponseGroup": "Rank,SiteData",
			},
			wantSignature: "zBfLIDKX7i2jktcFfVd+pmP7efMZEDo2qmXSOcHTgYU=",
			wantQuery:     "AWSAccessKeyId=AKIDEXAMPLE&Action=UrlInfo&ResponseGroup=Rank%2CSiteData&SignatureMethod=HmacSHA256&SignatureVersion=2&Timestamp=2017-06-01T00%3A00%3A00Z&Url=reddit.com&Version=2005-07-11&Signature=zBfLIDKX7i2jktcFfVd%2BpmP7efMZEDo2qmXSOcHTgYU%3D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer := fixedClockSigner(t)

			signed, err := signer.Build(tt.operation, tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSignature, signed.Signature)
			assert.Equal(t, tt.wantQuery, signed.Query)
			assert.Equal(t, "https://awis.amazonaws.com/api?"+tt.wantQuery, signed.URL)
			assert.Equal(t, tt.operation, signed.Operation)
		})
	}
}

func TestSigner_Build_Deterministico(t *testing.T) {
	signer := fixedClockSigner(t)

	params := map[string]string{
		"Url":           "reddit.com",
		"Start":         "20170601",
		"Range":         "20",
		"ResponseGroup": "History",
	}

	first, err := signer.Build(OperationTrafficHistory, params)
	require.NoError(t, err)

	second, err := signer.Build(OperationTrafficHistory, params)
	require.NoError(t, err)

	// Mesmas entradas e mesmo relógio produzem a mesma requisição byte a byte
	assert.Equal(t, first.Query, second.Query)
	assert.Equal(t, first.Signature, second.Signature)
	assert.Equal(t, first.URL, second.URL)
}

func TestSigner_Build_OrdenacaoCanonica(t *testing.T) {
	signer := fixedClockSigner(t)

	signed, err := signer.Build(OperationTrafficHistory, map[string]string{
		"Url":           "reddit.com",
		"Start":         "20170601",
		"Range":         "20",
		"ResponseGroup": "History",
	})
	require.NoError(t, err)

	// A query canônica deve estar ordenada lexicograficamente pelas chaves,
	// independente da ordem de inserção no mapa
	pairs := strings.Split(signed.Query, "&")
	keys := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		keys = append(keys, strings.SplitN(pair, "=", 2)[0])
	}

	// A assinatura é sempre o último parâmetro, fora da ordenação
	require.Equal(t, "Signature", keys[len(keys)-1])
	assert.IsIncreasing(t, keys[:len(keys)-1])
}

func TestSigner_Build_ParametroObrigatorioAusente(t *testing.T) {
	tests := []struct {
		name      string
		operation Operation
		params    map[string]string
		wantParam string
	}{
		{
			name:      "TrafficHistory sem Start",
			operation: OperationTrafficHistory,
			params: map[string]string{
				"Url":           "reddit.com",
				"Range":         "20",
				"ResponseGroup": "History",
			},
			wantParam: "Start",
		},
		{
			name:      "TrafficHistory com Range vazio",
			operation: OperationTrafficHistory,
			params: map[string]string{
				"Url":           "reddit.com",
				"Start":         "20170601",
				"Range":         "",
				"ResponseGroup": "History",
			},
			wantParam: "Range",
		},
		{
			name:      "UrlInfo sem Url",
			operation: OperationURLInfo,
			params: map[string]string{
				"ResponseGroup": "Rank",
			},
			wantParam: "Url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer := fixedClockSigner(t)

			signed, err := signer.Build(tt.operation, tt.params)
			require.Nil(t, signed)
			require.ErrorIs(t, err, ErrMissingParameter)

			var missingErr *MissingParameterError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.wantParam, missingErr.Name)
		})
	}
}

func TestSigner_Build_OperacaoNaoSuportada(t *testing.T) {
	signer := fixedClockSigner(t)

	signed, err := signer.Build(Operation("SitesLinkingIn"), map[string]string{
		"Url": "reddit.com",
	})
	require.Nil(t, signed)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestSigner_Build_EspacoCodificadoComoPercent20(t *testing.T) {
	signer := fixedClockSigner(t)

	signed, err := signer.Build(OperationURLInfo, map[string]string{
		"Url":           "example.com/a b",
		"ResponseGroup": "Rank",
	})
	require.NoError(t, err)

	// Espaço nunca vira +, que invalidaria a assinatura no servidor
	assert.Contains(t, signed.Query, "Url=example.com%2Fa%20b")
	assert.NotContains(t, signed.Query, "+")
	assert.Equal(t, "d3mZkjDkwEQDVlIyDduKBnLSNePnD6AjW+2O9tc4nYc=", signed.Signature)
}

func TestSigner_Build_ValorNaoCodificavel(t *testing.T) {
	signer := fixedClockSigner(t)

	signed, err := signer.Build(OperationURLInfo, map[string]string{
		"Url":           "example.com/\xff\xfe",
		"ResponseGroup": "Rank",
	})
	require.Nil(t, signed)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, "Url", encodingErr.Key)
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"não reservados passam intactos", "AZaz09-_.~", "AZaz09-_.~"},
		{"espaço vira %20", "a b", "a%20b"},
		{"dois pontos e barra", "2017-06-01T00:00:00Z", "2017-06-01T00%3A00%3A00Z"},
		{"sinal de mais é codificado", "a+b", "a%2Bb"},
		{"multibyte UTF-8", "ação", "a%C3%A7%C3%A3o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentEncode(tt.input))
		})
	}
}
