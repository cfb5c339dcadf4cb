package cart

import (
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// ItemCarrinho é uma linha do carrinho. A identidade da linha é o par
// (ProdutoID, TamanhoML): no máximo uma linha por par.
type ItemCarrinho struct {
	ProdutoID             uint   `json:"produto_id"`
	NomeProduto           string `json:"nome_produto"`
	Tamanho               string `json:"tamanho"`
	TamanhoML             int    `json:"tamanho_ml"`
	PrecoUnitarioCentavos int64  `json:"preco_unitario_centavos"`
	Quantidade            int    `json:"quantidade"`
}

// Carrinho guarda o estado de compra de um visitante: itens, endereço de
// entrega, forma de pagamento e a taxa de entrega fixa. Cada requisição
// trabalha sobre a sua própria cópia vinda da sessão, então não há
// escrita concorrente.
type Carrinho struct {
	Itens               []ItemCarrinho       `json:"itens"`
	Endereco            model.Endereco       `json:"endereco"`
	FormaPagamento      model.FormaPagamento `json:"forma_pagamento"`
	TaxaEntregaCentavos int64                `json:"taxa_entrega_centavos"`
}

// Novo cria um carrinho vazio com a taxa de entrega fixa da loja.
func Novo(taxaEntregaCentavos int64) *Carrinho {
	return &Carrinho{
		Itens:               []ItemCarrinho{},
		TaxaEntregaCentavos: taxaEntregaCentavos,
	}
}

func (c *Carrinho) indiceDe(produtoID uint, tamanhoML int) int {
	for i, item := range c.Itens {
		if item.ProdutoID == produtoID && item.TamanhoML == tamanhoML {
			return i
		}
	}
	return -1
}

// Adicionar coloca uma unidade da variação no carrinho. Se o par
// (ProdutoID, TamanhoML) já existe, incrementa a quantidade da linha em
// vez de duplicá-la.
func (c *Carrinho) Adicionar(produto model.Produto, variacao model.Variacao) {
	if i := c.indiceDe(produto.ID, variacao.TamanhoML); i >= 0 {
		c.Itens[i].Quantidade++
		return
	}
	c.Itens = append(c.Itens, ItemCarrinho{
		ProdutoID:             produto.ID,
		NomeProduto:           produto.Nome,
		Tamanho:               variacao.Tamanho,
		TamanhoML:             variacao.TamanhoML,
		PrecoUnitarioCentavos: variacao.PrecoCentavos,
		Quantidade:            1,
	})
}

// Remover apaga a linha do par informado. Remover um par ausente não é erro.
func (c *Carrinho) Remover(produtoID uint, tamanhoML int) {
	i := c.indiceDe(produtoID, tamanhoML)
	if i < 0 {
		return
	}
	c.Itens = append(c.Itens[:i], c.Itens[i+1:]...)
}

// DefinirQuantidade troca a quantidade da linha no lugar. Quantidade menor
// ou igual a zero equivale a remover.
func (c *Carrinho) DefinirQuantidade(produtoID uint, tamanhoML int, quantidade int) {
	if quantidade <= 0 {
		c.Remover(produtoID, tamanhoML)
		return
	}
	if i := c.indiceDe(produtoID, tamanhoML); i >= 0 {
		c.Itens[i].Quantidade = quantidade
	}
}

// DiminuirQuantidade tira uma unidade da linha; chegando a zero, remove.
func (c *Carrinho) DiminuirQuantidade(produtoID uint, tamanhoML int) {
	if i := c.indiceDe(produtoID, tamanhoML); i >= 0 {
		c.DefinirQuantidade(produtoID, tamanhoML, c.Itens[i].Quantidade-1)
	}
}

// DefinirEndereco grava o endereço de entrega escolhido no checkout.
func (c *Carrinho) DefinirEndereco(e model.Endereco) {
	c.Endereco = e
}

// DefinirPagamento grava a forma de pagamento escolhida.
func (c *Carrinho) DefinirPagamento(f model.FormaPagamento) {
	c.FormaPagamento = f
}

// Limpar volta o carrinho ao estado inicial vazio.
func (c *Carrinho) Limpar() {
	c.Itens = []ItemCarrinho{}
	c.Endereco = model.Endereco{}
	c.FormaPagamento = ""
}

// Vazio informa se não há nenhuma linha no carrinho.
func (c *Carrinho) Vazio() bool {
	return len(c.Itens) == 0
}

// QuantidadeItens soma as quantidades de todas as linhas (o contador do
// ícone do carrinho).
func (c *Carrinho) QuantidadeItens() int {
	total := 0
	for _, item := range c.Itens {
		total += item.Quantidade
	}
	return total
}

// SubtotalCentavos é a soma de preço unitário × quantidade das linhas.
func (c *Carrinho) SubtotalCentavos() int64 {
	var subtotal int64
	for _, item := range c.Itens {
		subtotal += item.PrecoUnitarioCentavos * int64(item.Quantidade)
	}
	return subtotal
}

// TotalCentavos é o subtotal mais a taxa de entrega fixa.
func (c *Carrinho) TotalCentavos() int64 {
	return c.SubtotalCentavos() + c.TaxaEntregaCentavos
}

// Resumo é a projeção única do carrinho usada por todos os handlers
// (resumo do carrinho, página de checkout e montagem do pedido).
type Resumo struct {
	Itens               []ItemCarrinho       `json:"itens"`
	QuantidadeItens     int                  `json:"quantidade_itens"`
	SubtotalCentavos    int64                `json:"subtotal_centavos"`
	TaxaEntregaCentavos int64                `json:"taxa_entrega_centavos"`
	TotalCentavos       int64                `json:"total_centavos"`
	Endereco            model.Endereco       `json:"endereco"`
	FormaPagamento      model.FormaPagamento `json:"forma_pagamento"`
}

// Resumo monta a projeção de leitura do carrinho.
func (c *Carrinho) Resumo() Resumo {
	return Resumo{
		Itens:               c.Itens,
		QuantidadeItens:     c.QuantidadeItens(),
		SubtotalCentavos:    c.SubtotalCentavos(),
		TaxaEntregaCentavos: c.TaxaEntregaCentavos,
		TotalCentavos:       c.TotalCentavos(),
		Endereco:            c.Endereco,
		FormaPagamento:      c.FormaPagamento,
	}
}

// ItensPedido converte as linhas do carrinho nas linhas do payload de
// pedido enviado à API.
func (c *Carrinho) ItensPedido() []model.ItemPedido {
	itens := make([]model.ItemPedido, 0, len(c.Itens))
	for _, item := range c.Itens {
		itens = append(itens, model.ItemPedido{
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitarioCentavos,
		})
	}
	return itens
}
