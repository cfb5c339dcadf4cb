package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// AvaliacaoHandler cuida das avaliações de produto da vitrine.
type AvaliacaoHandler struct{}

// ListarAvaliacoes devolve as avaliações de um produto, mais recentes
// primeiro.
func (h *AvaliacaoHandler) ListarAvaliacoes(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID do produto inválido."})
		return
	}

	var avaliacoes []model.Avaliacao
	if err := database.DB.Where("produto_id = ?", uint(id64)).Order("created_at desc").Find(&avaliacoes).Error; err != nil {
		registrarErro("listar avaliações", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao buscar avaliações."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "avaliacoes": avaliacoes})
}

type criarAvaliacaoRequest struct {
	NomeCliente string `json:"nome_cliente" binding:"required"`
	Nota        int    `json:"nota" binding:"required"`
	Comentario  string `json:"comentario"`
}

// CriarAvaliacao registra uma avaliação nova, com nota de 1 a 5.
func (h *AvaliacaoHandler) CriarAvaliacao(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID do produto inválido."})
		return
	}

	var req criarAvaliacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Preencha nome e nota."})
		return
	}
	if !model.NotaValida(req.Nota) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A nota deve ser de 1 a 5."})
		return
	}

	var produto model.Produto
	if err := database.DB.Where("id = ? AND disponivel = ?", uint(id64), true).First(&produto).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado ou indisponível."})
		return
	}

	avaliacao := model.Avaliacao{
		ProdutoID:   produto.ID,
		NomeCliente: strings.TrimSpace(req.NomeCliente),
		Nota:        req.Nota,
		Comentario:  strings.TrimSpace(req.Comentario),
	}
	if err := database.DB.Create(&avaliacao).Error; err != nil {
		registrarErro("criar avaliação", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar a avaliação."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "avaliacao": avaliacao})
}
