package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
	"github.com/iagomauricioo/caldosesopacg/internal/cart"
	"github.com/iagomauricioo/caldosesopacg/internal/config"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
	"github.com/iagomauricioo/caldosesopacg/internal/pix"
)

// PaymentHandler inicia o pagamento por um dos três fluxos exclusivos:
// PIX (QR Code com validade de 300s), cartão de crédito (link hospedado)
// ou dinheiro (troco conferido na hora). Os três montam o mesmo payload
// de pedido e o submetem à API.
type PaymentHandler struct {
	Store *sessions.CookieStore
	Cfg   *config.Config
	API   *apiclient.Client
	Pix   *pix.Store
}

type pagamentoRequest struct {
	Observacoes       string `json:"observacoes"`
	TrocoParaCentavos *int64 `json:"troco_para_centavos"`
}

// validarCheckout confere as precondições comuns aos três fluxos e monta o
// payload de pedido. Qualquer pendência volta como mensagem de validação.
func (h *PaymentHandler) validarCheckout(c *gin.Context, forma model.FormaPagamento, req pagamentoRequest) (*sessions.Session, *cart.Carrinho, *apiclient.CriarPedidoRequest, bool) {
	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	fluxo := carregarFluxo(session)

	if carrinho.Vazio() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Seu carrinho está vazio."})
		return nil, nil, nil, false
	}
	if fluxo.ClienteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Identifique-se pelo telefone antes de pagar."})
		return nil, nil, nil, false
	}
	if !carrinho.Endereco.Confirmado || carrinho.Endereco.Vazio() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Confirme o endereço de entrega antes de pagar."})
		return nil, nil, nil, false
	}

	pedido := &apiclient.CriarPedidoRequest{
		ClienteID:         fluxo.ClienteID,
		Endereco:          carrinho.Endereco,
		Itens:             carrinho.ItensPedido(),
		SubtotalCentavos:  carrinho.SubtotalCentavos(),
		TaxaCentavos:      carrinho.TaxaEntregaCentavos,
		TotalCentavos:     carrinho.TotalCentavos(),
		FormaPagamento:    forma,
		TrocoParaCentavos: req.TrocoParaCentavos,
		Observacoes:       req.Observacoes,
	}
	return session, carrinho, pedido, true
}

// concluir limpa o carrinho e leva o fluxo à confirmação depois de um
// pedido registrado.
func (h *PaymentHandler) concluir(c *gin.Context, session *sessions.Session, carrinho *cart.Carrinho) error {
	carrinho.Limpar()
	cart.Apagar(session)
	fluxo := carregarFluxo(session)
	fluxo.Concluir()
	salvarFluxo(session, fluxo)
	return session.Save(c.Request, c.Writer)
}

const chavePixContexto = "pix_contexto"

// contextoPix guarda o necessário para regenerar o QR Code depois que a
// cobrança expira (o carrinho já foi limpo nesse ponto).
type contextoPix struct {
	PedidoID      string `json:"pedido_id"`
	ValorCentavos int64  `json:"valor_centavos"`
}

// PagarComPix registra o pedido e gera o QR Code estático com expiração
// fixa de 300 segundos.
func (h *PaymentHandler) PagarComPix(c *gin.Context) {
	var req pagamentoRequest
	_ = c.ShouldBindJSON(&req)
	req.TrocoParaCentavos = nil

	session, carrinho, pedidoReq, ok := h.validarCheckout(c, model.PagamentoPix, req)
	if !ok {
		return
	}

	pedido, err := h.API.CriarPedido(c.Request.Context(), *pedidoReq)
	if err != nil {
		registrarErro("criar pedido PIX", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	cobranca, restante, err := h.gerarCobrancaPix(c, session, pedido.ID, pedidoReq.TotalCentavos)
	if err != nil {
		// O pedido já existe na API; o cliente pode gerar o QR de novo.
		registrarErro("gerar PIX", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	ctxPix, _ := json.Marshal(contextoPix{PedidoID: pedido.ID, ValorCentavos: pedidoReq.TotalCentavos})
	session.Values[chavePixContexto] = string(ctxPix)

	if err := h.concluir(c, session, carrinho); err != nil {
		registrarErro("salvar sessão após PIX", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao finalizar o checkout."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"pedido":            pedido,
		"cobranca":          cobranca,
		"restante_segundos": restante,
	})
}

func (h *PaymentHandler) gerarCobrancaPix(c *gin.Context, session *sessions.Session, pedidoID string, valorCentavos int64) (*pix.Cobranca, int, error) {
	resp, err := h.API.GerarPixEstatico(c.Request.Context(), apiclient.PixEstaticoRequest{
		Descricao:         fmt.Sprintf("Pedido %s - Caldos e Sopas CG", pedidoID),
		ValorCentavos:     valorCentavos,
		ExpiracaoSegundos: h.Cfg.PixExpiracaoSegundos,
		ReferenciaExterna: pedidoID,
	})
	if err != nil {
		return nil, 0, err
	}

	cobranca := pix.Cobranca{
		ID:            resp.ID,
		Payload:       resp.Payload,
		EncodedImage:  resp.EncodedImage,
		ValorCentavos: valorCentavos,
		ExpiraEm:      time.Now().Add(time.Duration(h.Cfg.PixExpiracaoSegundos) * time.Second),
	}
	chave := sessaoID(session)
	h.Pix.Guardar(chave, cobranca)
	return &cobranca, h.Cfg.PixExpiracaoSegundos, nil
}

// StatusPix informa os segundos restantes do QR Code vivo. Cobrança
// vencida já foi descartada e exige regeneração.
func (h *PaymentHandler) StatusPix(c *gin.Context) {
	session := obterSessao(h.Store, c)
	chave := sessaoID(session)

	cobranca, restante, ok := h.Pix.Buscar(chave)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "expirado": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"expirado":          false,
		"cobranca":          cobranca,
		"restante_segundos": restante,
	})
}

// RegenerarPix gera um novo QR Code para o pedido cuja cobrança expirou.
func (h *PaymentHandler) RegenerarPix(c *gin.Context) {
	session := obterSessao(h.Store, c)

	raw, ok := session.Values[chavePixContexto].(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nenhum pagamento PIX em andamento."})
		return
	}
	var ctxPix contextoPix
	if err := json.Unmarshal([]byte(raw), &ctxPix); err != nil || ctxPix.PedidoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nenhum pagamento PIX em andamento."})
		return
	}

	cobranca, restante, err := h.gerarCobrancaPix(c, session, ctxPix.PedidoID, ctxPix.ValorCentavos)
	if err != nil {
		registrarErro("regenerar PIX", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar a sessão."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cobranca": cobranca, "restante_segundos": restante})
}

// PagarComCartao registra o pedido e gera o link de pagamento hospedado.
// O carrinho é limpo assim que o link sai; a confirmação do provedor não
// é aguardada.
func (h *PaymentHandler) PagarComCartao(c *gin.Context) {
	var req pagamentoRequest
	_ = c.ShouldBindJSON(&req)
	req.TrocoParaCentavos = nil

	session, carrinho, pedidoReq, ok := h.validarCheckout(c, model.PagamentoCartao, req)
	if !ok {
		return
	}

	pedido, err := h.API.CriarPedido(c.Request.Context(), *pedidoReq)
	if err != nil {
		registrarErro("criar pedido cartão", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	link, err := h.API.GerarLinkCartao(c.Request.Context(), apiclient.LinkCartaoRequest{
		Nome:              fmt.Sprintf("Pedido %s", pedido.ID),
		Descricao:         "Pedido Caldos e Sopas CG",
		ValorCentavos:     pedidoReq.TotalCentavos,
		ReferenciaExterna: pedido.ID,
	})
	if err != nil {
		registrarErro("gerar link de cartão", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	if err := h.concluir(c, session, carrinho); err != nil {
		registrarErro("salvar sessão após cartão", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao finalizar o checkout."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": pedido, "link_pagamento": link.URL})
}

// PagarComDinheiro registra o pedido com pagamento na entrega. O troco,
// quando informado, precisa cobrir o total.
func (h *PaymentHandler) PagarComDinheiro(c *gin.Context) {
	var req pagamentoRequest
	_ = c.ShouldBindJSON(&req)

	session, carrinho, pedidoReq, ok := h.validarCheckout(c, model.PagamentoDinheiro, req)
	if !ok {
		return
	}

	if req.TrocoParaCentavos != nil && *req.TrocoParaCentavos < pedidoReq.TotalCentavos {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "O valor para troco deve ser maior ou igual ao total do pedido."})
		return
	}

	pedido, err := h.API.CriarPedido(c.Request.Context(), *pedidoReq)
	if err != nil {
		registrarErro("criar pedido dinheiro", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	if err := h.concluir(c, session, carrinho); err != nil {
		registrarErro("salvar sessão após dinheiro", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao finalizar o checkout."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": pedido})
}
