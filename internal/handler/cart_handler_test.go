package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func montarRotasCarrinho(t *testing.T) (*gin.Engine, *sessions.CookieStore) {
	t.Helper()
	abrirBancoDeTeste(t)
	router, store := novoRouterDeTeste()
	h := &CartHandler{Store: store, Cfg: configDeTeste()}
	router.POST("/carrinho/adicionar", h.AdicionarAoCarrinho)
	router.POST("/carrinho/remover", h.RemoverDoCarrinho)
	router.POST("/carrinho/diminuir", h.DiminuirQuantidade)
	router.POST("/carrinho/quantidade", h.DefinirQuantidade)
	router.POST("/carrinho/limpar", h.LimparCarrinho)
	router.GET("/carrinho", h.ResumoCarrinho)
	return router, store
}

func postJSON(router *gin.Engine, caminho, corpo string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, caminho, bytes.NewBufferString(corpo))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdicionarAoCarrinho(t *testing.T) {
	router, store := montarRotasCarrinho(t)
	produto, variacao := criarProdutoDeTeste(t)
	corpo := fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":%d}`, produto.ID, variacao.TamanhoML)

	t.Run("primeiro item entra com quantidade 1", func(t *testing.T) {
		recorder := postJSON(router, "/carrinho/adicionar", corpo)

		require.Equal(t, http.StatusOK, recorder.Code)
		resposta := corpoJSON(t, recorder.Body.Bytes())
		assert.Equal(t, true, resposta["success"])
		assert.Equal(t, float64(1), resposta["newCartCount"])

		valores := decodificarSessao(t, store, recorder.Result().Cookies())
		itens := itensDaSessao(t, valores)
		require.Len(t, itens, 1)
		assert.Equal(t, produto.ID, itens[0].ProdutoID)
		assert.Equal(t, 1, itens[0].Quantidade)
		assert.Equal(t, int64(1700), itens[0].PrecoUnitarioCentavos)
	})

	t.Run("mesmo par incrementa em vez de duplicar", func(t *testing.T) {
		primeiro := postJSON(router, "/carrinho/adicionar", corpo)
		require.Equal(t, http.StatusOK, primeiro.Code)
		cookie := primeiro.Result().Cookies()[0]

		segundo := postJSON(router, "/carrinho/adicionar", corpo, cookie)

		require.Equal(t, http.StatusOK, segundo.Code)
		valores := decodificarSessao(t, store, segundo.Result().Cookies())
		itens := itensDaSessao(t, valores)
		require.Len(t, itens, 1, "o par repetido não pode virar outra linha")
		assert.Equal(t, 2, itens[0].Quantidade)
	})

	t.Run("produto inexistente responde 404", func(t *testing.T) {
		recorder := postJSON(router, "/carrinho/adicionar", `{"produto_id":9999,"tamanho_ml":500}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("tamanho inexistente responde 404", func(t *testing.T) {
		recorder := postJSON(router, "/carrinho/adicionar", fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":999}`, produto.ID))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestRemoverDoCarrinho(t *testing.T) {
	router, store := montarRotasCarrinho(t)
	produto, variacao := criarProdutoDeTeste(t)
	corpo := fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":%d}`, produto.ID, variacao.TamanhoML)

	adicionado := postJSON(router, "/carrinho/adicionar", corpo)
	cookie := adicionado.Result().Cookies()[0]

	t.Run("remove a linha inteira", func(t *testing.T) {
		recorder := postJSON(router, "/carrinho/remover", corpo, cookie)

		require.Equal(t, http.StatusOK, recorder.Code)
		valores := decodificarSessao(t, store, recorder.Result().Cookies())
		assert.Empty(t, itensDaSessao(t, valores))
	})

	t.Run("remover par ausente não é erro", func(t *testing.T) {
		recorder := postJSON(router, "/carrinho/remover", `{"produto_id":777,"tamanho_ml":350}`, cookie)

		require.Equal(t, http.StatusOK, recorder.Code)
		valores := decodificarSessao(t, store, recorder.Result().Cookies())
		itens := itensDaSessao(t, valores)
		require.Len(t, itens, 1, "o item original continua lá")
	})
}

func TestDefinirQuantidadeZeroRemove(t *testing.T) {
	router, store := montarRotasCarrinho(t)
	produto, variacao := criarProdutoDeTeste(t)

	adicionado := postJSON(router, "/carrinho/adicionar", fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":%d}`, produto.ID, variacao.TamanhoML))
	cookie := adicionado.Result().Cookies()[0]

	recorder := postJSON(router, "/carrinho/quantidade", fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":%d,"quantidade":0}`, produto.ID, variacao.TamanhoML), cookie)

	require.Equal(t, http.StatusOK, recorder.Code)
	valores := decodificarSessao(t, store, recorder.Result().Cookies())
	assert.Empty(t, itensDaSessao(t, valores))
}

func TestResumoDoCarrinhoCalculaTotais(t *testing.T) {
	router, _ := montarRotasCarrinho(t)
	produto, variacao := criarProdutoDeTeste(t)
	corpo := fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":%d}`, produto.ID, variacao.TamanhoML)

	primeiro := postJSON(router, "/carrinho/adicionar", corpo)
	cookie := primeiro.Result().Cookies()[0]
	segundo := postJSON(router, "/carrinho/adicionar", corpo, cookie)
	cookie = segundo.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/carrinho", nil)
	req.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	resposta := corpoJSON(t, recorder.Body.Bytes())
	resumo := resposta["resumo"].(map[string]interface{})
	// 1700 × 2 + taxa fixa 500
	assert.Equal(t, float64(3400), resumo["subtotal_centavos"])
	assert.Equal(t, float64(500), resumo["taxa_entrega_centavos"])
	assert.Equal(t, float64(3900), resumo["total_centavos"])
}

func TestLimparCarrinho(t *testing.T) {
	router, store := montarRotasCarrinho(t)
	produto, variacao := criarProdutoDeTeste(t)

	adicionado := postJSON(router, "/carrinho/adicionar", fmt.Sprintf(`{"produto_id":%d,"tamanho_ml":%d}`, produto.ID, variacao.TamanhoML))
	cookie := adicionado.Result().Cookies()[0]

	recorder := postJSON(router, "/carrinho/limpar", ``, cookie)

	require.Equal(t, http.StatusOK, recorder.Code)
	resposta := corpoJSON(t, recorder.Body.Bytes())
	assert.Equal(t, float64(0), resposta["newCartCount"])

	valores := decodificarSessao(t, store, recorder.Result().Cookies())
	assert.Nil(t, itensDaSessao(t, valores), "as chaves persistidas do carrinho devem sumir")
}
