package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
	"github.com/iagomauricioo/caldosesopacg/internal/cart"
	"github.com/iagomauricioo/caldosesopacg/internal/checkout"
	"github.com/iagomauricioo/caldosesopacg/internal/config"
	"github.com/iagomauricioo/caldosesopacg/internal/lookup"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// CheckoutHandler conduz o fluxo de checkout: identificação do cliente
// pelo telefone, endereço (com consulta de CEP) e navegação entre etapas.
type CheckoutHandler struct {
	Store *sessions.CookieStore
	Cfg   *config.Config
	API   *apiclient.Client
}

// Etapa devolve onde o visitante está no fluxo e o resumo do carrinho.
func (h *CheckoutHandler) Etapa(c *gin.Context) {
	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	fluxo := carregarFluxo(session)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"etapa":        fluxo.Etapa.String(),
		"cliente_id":   fluxo.ClienteID,
		"pode_avancar": fluxo.PodeAvancar(),
		"resumo":       carrinho.Resumo(),
	})
}

// Avancar tenta ir à próxima etapa; a guarda da etapa de cliente exige um
// cliente resolvido.
func (h *CheckoutHandler) Avancar(c *gin.Context) {
	session := obterSessao(h.Store, c)
	fluxo := carregarFluxo(session)

	if !fluxo.Avancar() && fluxo.Etapa == checkout.EtapaCliente {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Identifique-se pelo telefone antes de continuar."})
		return
	}

	salvarFluxo(session, fluxo)
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o checkout."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "etapa": fluxo.Etapa.String()})
}

// Voltar retorna à etapa anterior (no início é um no-op).
func (h *CheckoutHandler) Voltar(c *gin.Context) {
	session := obterSessao(h.Store, c)
	fluxo := carregarFluxo(session)
	fluxo.Voltar()
	salvarFluxo(session, fluxo)
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o checkout."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "etapa": fluxo.Etapa.String()})
}

type identificarRequest struct {
	Telefone string `json:"telefone" binding:"required"`
}

// IdentificarCliente procura o cliente pelo telefone. Encontrado, devolve
// os dados e o endereço padrão para pré-preencher o formulário; não
// encontrado, sinaliza cadastro em branco para aquele telefone. O fluxo
// só recebe o ClienteID quando a busca tem sucesso.
func (h *CheckoutHandler) IdentificarCliente(c *gin.Context) {
	var req identificarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Informe o telefone."})
		return
	}

	cliente, err := h.API.BuscarClientePorTelefone(c.Request.Context(), req.Telefone)
	if err != nil {
		if apiclient.NaoEncontrado(err) {
			// Fluxo normal: cliente novo, formulário de cadastro em branco.
			c.JSON(http.StatusOK, gin.H{"success": true, "cadastrado": false, "telefone": req.Telefone})
			return
		}
		registrarErro("buscar cliente", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	// Busca o endereço padrão; falhar aqui não derruba a identificação.
	var endereco *model.Endereco
	if e, err := h.API.BuscarEnderecoCliente(c.Request.Context(), req.Telefone); err == nil {
		endereco = e
	} else {
		registrarErro("buscar endereço do cliente", err)
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	fluxo := carregarFluxo(session)
	fluxo.ClienteID = cliente.ClienteID
	salvarFluxo(session, fluxo)
	if endereco != nil {
		endereco.Confirmado = true
		carrinho.DefinirEndereco(*endereco)
		if err := cart.Salvar(session, carrinho); err != nil {
			registrarErro("serializar carrinho", err)
		}
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o checkout."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"cadastrado": true,
		"cliente":    cliente,
		"endereco":   endereco,
	})
}

type cadastrarClienteRequest struct {
	Nome     string         `json:"nome" binding:"required"`
	CPF      string         `json:"cpf"`
	Telefone string         `json:"telefone" binding:"required"`
	Endereco model.Endereco `json:"endereco"`
}

// CadastrarCliente cria o cliente novo na API e prossegue com o
// identificador devolvido pelo servidor.
func (h *CheckoutHandler) CadastrarCliente(c *gin.Context) {
	var req cadastrarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Preencha nome e telefone."})
		return
	}

	cliente, err := h.API.CriarCliente(c.Request.Context(), apiclient.CriarClienteRequest{
		Nome:     req.Nome,
		CPF:      req.CPF,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
	})
	if err != nil {
		registrarErro("criar cliente", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	fluxo := carregarFluxo(session)
	fluxo.ClienteID = cliente.ClienteID
	salvarFluxo(session, fluxo)
	if !req.Endereco.Vazio() {
		endereco := req.Endereco
		endereco.Confirmado = true
		carrinho.DefinirEndereco(endereco)
		if err := cart.Salvar(session, carrinho); err != nil {
			registrarErro("serializar carrinho", err)
		}
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o checkout."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "cliente": cliente})
}

// BuscarCEP resolve o endereço canônico de um CEP de 8 dígitos, barrando
// cidades fora da área de entrega. Com coordenadas no resultado o endereço
// volta não confirmado e o cliente precisa confirmar no mapa.
func (h *CheckoutHandler) BuscarCEP(c *gin.Context) {
	cep, err := lookup.ValidarCEP(c.Param("cep"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "CEP deve ter exatamente 8 dígitos."})
		return
	}

	resultado, err := h.API.BuscarCEP(c.Request.Context(), cep)
	if err != nil {
		registrarErro("buscar CEP", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}

	endereco, err := lookup.ParaEndereco(resultado, h.Cfg.CidadeAtendida)
	if err != nil {
		// Cidade fora da área de entrega: nenhum campo é aproveitado.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"endereco":               endereco,
		"confirmacao_necessaria": !endereco.Confirmado,
	})
}

type definirEnderecoRequest struct {
	Endereco  model.Endereco `json:"endereco" binding:"required"`
	Confirmar bool           `json:"confirmar"`
}

// DefinirEndereco grava o endereço de entrega no carrinho. Endereço com
// coordenadas só fica utilizável com a confirmação explícita do cliente.
func (h *CheckoutHandler) DefinirEndereco(c *gin.Context) {
	var req definirEnderecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Endereço inválido."})
		return
	}
	if req.Endereco.Rua == "" || req.Endereco.Numero == "" || req.Endereco.Bairro == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Preencha rua, número e bairro."})
		return
	}

	endereco := req.Endereco
	if endereco.Latitude != nil && endereco.Longitude != nil {
		endereco.Confirmado = req.Confirmar
	} else {
		endereco.Confirmado = true
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.DefinirEndereco(endereco)
	if err := cart.Salvar(session, carrinho); err != nil {
		registrarErro("serializar carrinho", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o endereço."})
		return
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o endereço."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "endereco": endereco, "confirmacao_necessaria": !endereco.Confirmado})
}

type definirPagamentoRequest struct {
	FormaPagamento model.FormaPagamento `json:"forma_pagamento" binding:"required"`
}

// DefinirPagamento grava a forma de pagamento escolhida no radio do
// checkout.
func (h *CheckoutHandler) DefinirPagamento(c *gin.Context) {
	var req definirPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.FormaPagamentoValida(req.FormaPagamento) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Forma de pagamento inválida."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.DefinirPagamento(req.FormaPagamento)
	if err := cart.Salvar(session, carrinho); err != nil {
		registrarErro("serializar carrinho", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar a forma de pagamento."})
		return
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar a forma de pagamento."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "forma_pagamento": req.FormaPagamento})
}
