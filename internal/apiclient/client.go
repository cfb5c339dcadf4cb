// Package apiclient é o cliente tipado da API da loja, que guarda os
// registros de clientes, consulta CEP, inicia cobranças e persiste os
// pedidos. Todas as respostas vêm no envelope {success, message, data}.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fala com a API da loja. Construa com New; todas as operações
// aceitam context e nunca fazem retry — falha vira mensagem para o
// usuário no handler.
type Client struct {
	http *resty.Client
}

// New cria o cliente apontando para a base da API. O token, quando
// presente, vai no header de autorização de todas as chamadas.
func New(baseURL, apiKey string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		http.SetHeader("access_token", apiKey)
	}
	return &Client{http: http}
}

// envelope é a casca padrão das respostas da API.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ErroTransporte: a chamada nem chegou a uma resposta HTTP.
type ErroTransporte struct {
	Op  string
	Err error
}

func (e *ErroTransporte) Error() string {
	return fmt.Sprintf("falha de rede em %s: %v", e.Op, e.Err)
}

func (e *ErroTransporte) Unwrap() error { return e.Err }

// ErroHTTP: resposta com status fora da faixa 2xx.
type ErroHTTP struct {
	Op       string
	Status   int
	Mensagem string
}

func (e *ErroHTTP) Error() string {
	return fmt.Sprintf("%s respondeu %d: %s", e.Op, e.Status, e.Mensagem)
}

// NaoEncontrado informa se o erro é um 404 da API (ex.: cliente inexistente,
// tratado como fluxo normal de cadastro).
func NaoEncontrado(err error) bool {
	if e, ok := err.(*ErroHTTP); ok {
		return e.Status == 404
	}
	return false
}

// ErroDominio: a API respondeu 2xx mas com success=false no envelope.
type ErroDominio struct {
	Op       string
	Mensagem string
}

func (e *ErroDominio) Error() string {
	return fmt.Sprintf("%s rejeitado pela API: %s", e.Op, e.Mensagem)
}

// chamar executa a requisição, decodifica o envelope e devolve o data cru
// para a operação decodificar no seu próprio tipo.
func (c *Client) chamar(ctx context.Context, op, method, path string, body interface{}) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &ErroTransporte{Op: op, Err: err}
	}

	var env envelope
	// Algumas respostas de erro não trazem envelope válido; nesse caso a
	// mensagem fica vazia e o status basta.
	_ = json.Unmarshal(resp.Body(), &env)

	if resp.IsError() {
		return nil, &ErroHTTP{Op: op, Status: resp.StatusCode(), Mensagem: env.Message}
	}
	if !env.Success {
		return nil, &ErroDominio{Op: op, Mensagem: env.Message}
	}
	return env.Data, nil
}

func decodificar(op string, data json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &ErroDominio{Op: op, Mensagem: fmt.Sprintf("resposta em formato inesperado: %v", err)}
	}
	return nil
}
