package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/iagomauricioo/caldosesopacg/internal/cart"
	"github.com/iagomauricioo/caldosesopacg/internal/config"
	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// CartHandler agrupa os handlers do carrinho.
type CartHandler struct {
	Store *sessions.CookieStore
	Cfg   *config.Config
}

type itemCarrinhoRequest struct {
	ProdutoID uint `json:"produto_id" binding:"required"`
	TamanhoML int  `json:"tamanho_ml" binding:"required"`
}

type quantidadeRequest struct {
	ProdutoID  uint `json:"produto_id" binding:"required"`
	TamanhoML  int  `json:"tamanho_ml" binding:"required"`
	Quantidade int  `json:"quantidade"`
}

func (h *CartHandler) salvarEResponder(c *gin.Context, session *sessions.Session, carrinho *cart.Carrinho, mensagem string) {
	if err := cart.Salvar(session, carrinho); err != nil {
		registrarErro("serializar carrinho", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o carrinho."})
		return
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		registrarErro("salvar sessão do carrinho", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o carrinho."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      mensagem,
		"newCartCount": carrinho.QuantidadeItens(),
		"resumo":       carrinho.Resumo(),
	})
}

// AdicionarAoCarrinho coloca uma unidade da variação no carrinho. Par já
// presente incrementa a quantidade em vez de criar outra linha.
func (h *CartHandler) AdicionarAoCarrinho(c *gin.Context) {
	var req itemCarrinhoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Produto ou tamanho inválido."})
		return
	}

	var produto model.Produto
	if err := database.DB.Where("id = ? AND disponivel = ?", req.ProdutoID, true).First(&produto).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado ou indisponível."})
		return
	}
	var variacao model.Variacao
	if err := database.DB.Where("produto_id = ? AND tamanho_ml = ?", req.ProdutoID, req.TamanhoML).First(&variacao).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Tamanho não encontrado para este produto."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.Adicionar(produto, variacao)
	h.salvarEResponder(c, session, carrinho, "Item adicionado com sucesso!")
}

// RemoverDoCarrinho apaga a linha do par (produto, tamanho). Remover um
// par ausente não é erro.
func (h *CartHandler) RemoverDoCarrinho(c *gin.Context) {
	var req itemCarrinhoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Produto ou tamanho inválido."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.Remover(req.ProdutoID, req.TamanhoML)
	h.salvarEResponder(c, session, carrinho, "Item removido.")
}

// DiminuirQuantidade tira uma unidade da linha; chegando a zero, remove.
func (h *CartHandler) DiminuirQuantidade(c *gin.Context) {
	var req itemCarrinhoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Produto ou tamanho inválido."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.DiminuirQuantidade(req.ProdutoID, req.TamanhoML)
	h.salvarEResponder(c, session, carrinho, "Quantidade atualizada.")
}

// DefinirQuantidade troca a quantidade da linha; zero ou negativo remove.
func (h *CartHandler) DefinirQuantidade(c *gin.Context) {
	var req quantidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Produto ou tamanho inválido."})
		return
	}

	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.DefinirQuantidade(req.ProdutoID, req.TamanhoML, req.Quantidade)
	h.salvarEResponder(c, session, carrinho, "Quantidade atualizada.")
}

// LimparCarrinho esvazia o carrinho e apaga as três chaves persistidas.
func (h *CartHandler) LimparCarrinho(c *gin.Context) {
	session, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	carrinho.Limpar()
	cart.Apagar(session)
	apagarFluxo(session)
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao limpar o carrinho."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho esvaziado.", "newCartCount": 0})
}

// ResumoCarrinho devolve a projeção única do carrinho usada pela página
// do carrinho e pelo checkout.
func (h *CartHandler) ResumoCarrinho(c *gin.Context) {
	_, carrinho := carrinhoDaSessao(h.Store, h.Cfg, c)
	c.JSON(http.StatusOK, gin.H{"success": true, "resumo": carrinho.Resumo()})
}
