package cart

import (
	"encoding/json"

	"github.com/gorilla/sessions"

	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// NomeSessao é o nome do cookie de sessão da loja.
const NomeSessao = "caldos-cg-session"

// Cada pedaço do carrinho persiste sob a sua própria chave, serializado
// em JSON de forma independente. Chave ausente ou corrompida cai no valor
// vazio padrão daquele pedaço, sem derrubar o resto.
const (
	ChaveItens     = "carrinho_itens"
	ChaveEndereco  = "carrinho_endereco"
	ChavePagamento = "carrinho_pagamento"
)

// Carregar reidrata o carrinho a partir da sessão.
func Carregar(session *sessions.Session, taxaEntregaCentavos int64) *Carrinho {
	c := Novo(taxaEntregaCentavos)

	if raw, ok := session.Values[ChaveItens].(string); ok {
		var itens []ItemCarrinho
		if err := json.Unmarshal([]byte(raw), &itens); err == nil && itens != nil {
			c.Itens = itens
		}
	}
	if raw, ok := session.Values[ChaveEndereco].(string); ok {
		var endereco model.Endereco
		if err := json.Unmarshal([]byte(raw), &endereco); err == nil {
			c.Endereco = endereco
		}
	}
	if raw, ok := session.Values[ChavePagamento].(string); ok {
		var forma model.FormaPagamento
		if err := json.Unmarshal([]byte(raw), &forma); err == nil && model.FormaPagamentoValida(forma) {
			c.FormaPagamento = forma
		}
	}
	return c
}

// Salvar grava as três chaves na sessão (a sessão em si ainda precisa ser
// salva na resposta pelo handler).
func Salvar(session *sessions.Session, c *Carrinho) error {
	itens, err := json.Marshal(c.Itens)
	if err != nil {
		return err
	}
	endereco, err := json.Marshal(c.Endereco)
	if err != nil {
		return err
	}
	forma, err := json.Marshal(c.FormaPagamento)
	if err != nil {
		return err
	}
	session.Values[ChaveItens] = string(itens)
	session.Values[ChaveEndereco] = string(endereco)
	session.Values[ChavePagamento] = string(forma)
	return nil
}

// Apagar remove as três chaves persistidas (usado pelo Limpar do carrinho
// e após um pedido concluído).
func Apagar(session *sessions.Session) {
	delete(session.Values, ChaveItens)
	delete(session.Values, ChaveEndereco)
	delete(session.Values, ChavePagamento)
}
