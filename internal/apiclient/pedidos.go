package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// CriarPedidoRequest é o payload único de submissão de pedido, montado
// igual pelos três fluxos de pagamento.
type CriarPedidoRequest struct {
	ClienteID         string               `json:"cliente_id"`
	Endereco          model.Endereco       `json:"endereco"`
	Itens             []model.ItemPedido   `json:"itens"`
	SubtotalCentavos  int64                `json:"subtotal_centavos"`
	TaxaCentavos      int64                `json:"taxa_entrega_centavos"`
	TotalCentavos     int64                `json:"total_centavos"`
	FormaPagamento    model.FormaPagamento `json:"forma_pagamento"`
	TrocoParaCentavos *int64               `json:"troco_para_centavos,omitempty"`
	Observacoes       string               `json:"observacoes,omitempty"`
}

// CriarPedido registra o pedido na API e devolve o recurso criado.
func (c *Client) CriarPedido(ctx context.Context, req CriarPedidoRequest) (*model.Pedido, error) {
	data, err := c.chamar(ctx, "criar pedido", http.MethodPost, "/pedidos", req)
	if err != nil {
		return nil, err
	}
	var pedido model.Pedido
	if err := decodificar("criar pedido", data, &pedido); err != nil {
		return nil, err
	}
	return &pedido, nil
}

type listaPedidos struct {
	Pedidos []model.Pedido `json:"pedidos"`
}

// ListarPedidos busca os pedidos registrados na API.
func (c *Client) ListarPedidos(ctx context.Context) ([]model.Pedido, error) {
	data, err := c.chamar(ctx, "listar pedidos", http.MethodGet, "/pedidos", nil)
	if err != nil {
		return nil, err
	}
	var lista listaPedidos
	if err := decodificar("listar pedidos", data, &lista); err != nil {
		return nil, err
	}
	return lista.Pedidos, nil
}

// AtualizarStatusPedido pede ao servidor o próximo status do pedido. A
// loja nunca valida a transição, só solicita.
func (c *Client) AtualizarStatusPedido(ctx context.Context, pedidoID string, status model.StatusPedido) (*model.Pedido, error) {
	body := map[string]model.StatusPedido{"status": status}
	path := fmt.Sprintf("/pedidos/%s/status", pedidoID)
	data, err := c.chamar(ctx, "atualizar status do pedido", http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	var pedido model.Pedido
	if err := decodificar("atualizar status do pedido", data, &pedido); err != nil {
		return nil, err
	}
	return &pedido, nil
}
