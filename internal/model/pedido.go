package model

import "time"

// StatusPedido define os possíveis status de um pedido. O pedido é um
// recurso do servidor: a loja apenas solicita o próximo status linear,
// nunca valida transições localmente.
type StatusPedido string

const (
	StatusRecebido        StatusPedido = "RECEBIDO"
	StatusEmPreparo       StatusPedido = "EM_PREPARO"
	StatusSaiuParaEntrega StatusPedido = "SAIU_PARA_ENTREGA"
	StatusEntregue        StatusPedido = "ENTREGUE"
	StatusCancelado       StatusPedido = "CANCELADO"
)

// ProximoStatus devolve o próximo status da sequência linear de entrega.
// Estados terminais (entregue, cancelado) devolvem o próprio status.
func ProximoStatus(atual StatusPedido) StatusPedido {
	switch atual {
	case StatusRecebido:
		return StatusEmPreparo
	case StatusEmPreparo:
		return StatusSaiuParaEntrega
	case StatusSaiuParaEntrega:
		return StatusEntregue
	default:
		return atual
	}
}

// FormaPagamento identifica o meio de pagamento escolhido no checkout.
type FormaPagamento string

const (
	PagamentoPix      FormaPagamento = "PIX"
	PagamentoCartao   FormaPagamento = "CARTAO_CREDITO"
	PagamentoDinheiro FormaPagamento = "DINHEIRO"
)

// FormaPagamentoValida informa se o valor veio de uma das três opções do
// checkout.
func FormaPagamentoValida(f FormaPagamento) bool {
	switch f {
	case PagamentoPix, PagamentoCartao, PagamentoDinheiro:
		return true
	}
	return false
}

// ItemPedido é uma linha do pedido enviada à API (sem observação por item).
type ItemPedido struct {
	ProdutoID     uint  `json:"produto_id"`
	Quantidade    int   `json:"quantidade"`
	PrecoUnitario int64 `json:"preco_unitario"`
}

// Pedido espelha o recurso de pedido mantido pela API da loja. Valores
// monetários sempre em centavos.
type Pedido struct {
	ID                string         `json:"id"`
	ClienteID         string         `json:"cliente_id"`
	EnderecoID        string         `json:"endereco_id,omitempty"`
	Itens             []ItemPedido   `json:"itens"`
	SubtotalCentavos  int64          `json:"subtotal_centavos"`
	TaxaCentavos      int64          `json:"taxa_entrega_centavos"`
	TotalCentavos     int64          `json:"total_centavos"`
	FormaPagamento    FormaPagamento `json:"forma_pagamento"`
	TrocoParaCentavos *int64         `json:"troco_para_centavos,omitempty"`
	Status            StatusPedido   `json:"status"`
	Observacoes       string         `json:"observacoes,omitempty"`
	PagamentoRef      string         `json:"pagamento_ref,omitempty"`
	PagamentoStatus   string         `json:"pagamento_status,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
