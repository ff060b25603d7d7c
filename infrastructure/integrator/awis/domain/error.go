package awisdomain

import "fmt"

// ServiceError representa um erro reportado pelo envelope da resposta do
// serviço (assinatura rejeitada, formato de domínio desconhecido, cota
// excedida, etc.). O código do serviço é preservado sem reinterpretação.
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error %s: %s", e.Code, e.Message)
}

// FieldError registra um valor numérico malformado encontrado durante a
// decodificação. Não aborta o parse: o campo afetado fica nil e os demais
// campos e dias continuam sendo processados. Chamadores em modo estrito podem
// tratar uma lista de diagnósticos não vazia como falha.
type FieldError struct {
	Metric string `json:"metric"`
	Date   string `json:"date,omitempty"`
	Value  string `json:"value"`
}

func (e FieldError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("malformed %s on %s: %q", e.Metric, e.Date, e.Value)
	}
	return fmt.Sprintf("malformed %s: %q", e.Metric, e.Value)
}
