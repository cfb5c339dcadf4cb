package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// VitrineHandler expõe o cardápio. Os produtos são somente leitura na
// vitrine: buscados, nunca alterados.
type VitrineHandler struct{}

// ListarProdutos devolve o cardápio disponível na ordem de exibição, com
// as variações de tamanho de cada produto.
func (h *VitrineHandler) ListarProdutos(c *gin.Context) {
	var produtos []model.Produto
	err := database.DB.
		Preload("Variacoes").
		Where("disponivel = ?", true).
		Order("ordem asc").
		Find(&produtos).Error
	if err != nil {
		registrarErro("listar produtos", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao buscar o cardápio."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "produtos": produtos})
}

// BuscarProduto devolve um produto com variações e avaliações.
func (h *VitrineHandler) BuscarProduto(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID do produto inválido."})
		return
	}

	var produto model.Produto
	err = database.DB.
		Preload("Variacoes").
		Where("id = ? AND disponivel = ?", uint(id64), true).
		First(&produto).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado ou indisponível."})
		return
	}

	var avaliacoes []model.Avaliacao
	database.DB.Where("produto_id = ?", produto.ID).Order("created_at desc").Find(&avaliacoes)

	c.JSON(http.StatusOK, gin.H{"success": true, "produto": produto, "avaliacoes": avaliacoes})
}
