package apiclient

import (
	"context"
	"net/http"

	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// BuscarClientePorTelefone procura o cliente pelo telefone formatado.
// Cliente inexistente volta como ErroHTTP 404 (ver NaoEncontrado).
func (c *Client) BuscarClientePorTelefone(ctx context.Context, telefone string) (*model.Cliente, error) {
	data, err := c.chamar(ctx, "buscar cliente", http.MethodGet, "/clientes/"+telefone, nil)
	if err != nil {
		return nil, err
	}
	var cliente model.Cliente
	if err := decodificar("buscar cliente", data, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// BuscarEnderecoCliente busca o endereço padrão do cliente, usado para
// pré-preencher o checkout depois de um cliente encontrado.
func (c *Client) BuscarEnderecoCliente(ctx context.Context, telefone string) (*model.Endereco, error) {
	data, err := c.chamar(ctx, "buscar endereço do cliente", http.MethodGet, "/clientes/"+telefone+"/endereco", nil)
	if err != nil {
		return nil, err
	}
	var endereco model.Endereco
	if err := decodificar("buscar endereço do cliente", data, &endereco); err != nil {
		return nil, err
	}
	return &endereco, nil
}

// CriarClienteRequest é o payload de cadastro de um cliente novo.
type CriarClienteRequest struct {
	Nome     string         `json:"nome"`
	CPF      string         `json:"cpf"`
	Telefone string         `json:"telefone"`
	Endereco model.Endereco `json:"endereco"`
}

// CriarCliente cadastra o cliente na API e devolve o registro criado com
// o clienteId atribuído pelo servidor.
func (c *Client) CriarCliente(ctx context.Context, req CriarClienteRequest) (*model.Cliente, error) {
	data, err := c.chamar(ctx, "criar cliente", http.MethodPost, "/clientes", req)
	if err != nil {
		return nil, err
	}
	var cliente model.Cliente
	if err := decodificar("criar cliente", data, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}
