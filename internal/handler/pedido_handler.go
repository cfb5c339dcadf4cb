package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// PedidoHandler acompanha os pedidos registrados na API: listagem para o
// acompanhamento e o avanço linear de status pelo lojista. A loja nunca
// valida transições, apenas solicita o próximo estado ao servidor.
type PedidoHandler struct {
	Store *sessions.CookieStore
	API   *apiclient.Client
}

// ListarPedidos devolve os pedidos registrados na API.
func (h *PedidoHandler) ListarPedidos(c *gin.Context) {
	pedidos, err := h.API.ListarPedidos(c.Request.Context())
	if err != nil {
		registrarErro("listar pedidos", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedidos": pedidos})
}

type avancarStatusRequest struct {
	StatusAtual model.StatusPedido `json:"status_atual" binding:"required"`
}

// AvancarStatus solicita à API o próximo status linear do pedido
// (recebido → em preparo → saiu para entrega → entregue).
func (h *PedidoHandler) AvancarStatus(c *gin.Context) {
	pedidoID := c.Param("id")
	if pedidoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID do pedido inválido."})
		return
	}

	var req avancarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Informe o status atual do pedido."})
		return
	}

	proximo := model.ProximoStatus(req.StatusAtual)
	if proximo == req.StatusAtual {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Este pedido já chegou ao fim do acompanhamento."})
		return
	}

	pedido, err := h.API.AtualizarStatusPedido(c.Request.Context(), pedidoID, proximo)
	if err != nil {
		registrarErro("atualizar status do pedido", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": pedido})
}

// CancelarPedido solicita o cancelamento do pedido à API.
func (h *PedidoHandler) CancelarPedido(c *gin.Context) {
	pedidoID := c.Param("id")
	if pedidoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID do pedido inválido."})
		return
	}

	pedido, err := h.API.AtualizarStatusPedido(c.Request.Context(), pedidoID, model.StatusCancelado)
	if err != nil {
		registrarErro("cancelar pedido", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": mensagemDeErro(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": pedido})
}
