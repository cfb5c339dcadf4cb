package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/iagomauricioo/caldosesopacg/internal/cart"
	"github.com/iagomauricioo/caldosesopacg/internal/checkout"
	"github.com/iagomauricioo/caldosesopacg/internal/config"
	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// --- Infra compartilhada dos testes de handler ---

// abrirBancoDeTeste troca o banco global por um sqlite em memória migrado,
// para os testes não dependerem de um Postgres vivo.
func abrirBancoDeTeste(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s/teste.db?mode=memory&cache=shared", t.TempDir())), &gorm.Config{})
	require.NoError(t, err, "não foi possível abrir o sqlite de teste")
	require.NoError(t, database.Migrate(db))

	anterior := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = anterior })
}

func configDeTeste() *config.Config {
	return &config.Config{
		SessionSecret:        "segredo-de-teste",
		Port:                 "8080",
		APIBaseURL:           "http://api.invalido.local",
		CidadeAtendida:       "Campina Grande",
		TaxaEntregaCentavos:  500,
		PixExpiracaoSegundos: 300,
	}
}

func novoRouterDeTeste() (*gin.Engine, *sessions.CookieStore) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := sessions.NewCookieStore([]byte("segredo-de-teste"))
	return router, store
}

// criarProdutoDeTeste grava um produto com uma variação M de 500ml por
// 1700 centavos e devolve os dois.
func criarProdutoDeTeste(t *testing.T) (model.Produto, model.Variacao) {
	t.Helper()
	produto := model.Produto{
		Nome: "Caldo de Frango", Descricao: "Caldo de teste", Disponivel: true, Ordem: 1,
		Variacoes: []model.Variacao{
			{Tamanho: "M", TamanhoML: 500, PrecoCentavos: 1700},
		},
	}
	require.NoError(t, database.DB.Create(&produto).Error)
	return produto, produto.Variacoes[0]
}

// codificarSessao monta o cookie de sessão com os valores informados, no
// mesmo formato que o gorilla/sessions grava.
func codificarSessao(t *testing.T, store *sessions.CookieStore, valores map[interface{}]interface{}) *http.Cookie {
	t.Helper()
	session := sessions.NewSession(store, cart.NomeSessao)
	session.Values = valores
	encoded, err := securecookie.EncodeMulti(session.Name(), session.Values, store.Codecs...)
	require.NoError(t, err)
	return &http.Cookie{Name: session.Name(), Value: encoded}
}

// decodificarSessao lê de volta o cookie de sessão devolvido na resposta.
func decodificarSessao(t *testing.T, store *sessions.CookieStore, cookies []*http.Cookie) map[interface{}]interface{} {
	t.Helper()
	for _, cookie := range cookies {
		if cookie.Name != cart.NomeSessao {
			continue
		}
		valores := make(map[interface{}]interface{})
		err := securecookie.DecodeMulti(cart.NomeSessao, cookie.Value, &valores, store.Codecs...)
		require.NoError(t, err)
		return valores
	}
	t.Fatal("cookie de sessão não encontrado na resposta")
	return nil
}

// sessaoComCarrinho monta os valores de sessão de um checkout pronto para
// pagar: itens, endereço confirmado e cliente resolvido.
func sessaoComCarrinho(t *testing.T, carrinho *cart.Carrinho, fluxo *checkout.Fluxo) map[interface{}]interface{} {
	t.Helper()
	valores := make(map[interface{}]interface{})

	itens, err := json.Marshal(carrinho.Itens)
	require.NoError(t, err)
	endereco, err := json.Marshal(carrinho.Endereco)
	require.NoError(t, err)
	forma, err := json.Marshal(carrinho.FormaPagamento)
	require.NoError(t, err)
	valores[cart.ChaveItens] = string(itens)
	valores[cart.ChaveEndereco] = string(endereco)
	valores[cart.ChavePagamento] = string(forma)

	if fluxo != nil {
		raw, err := json.Marshal(fluxo)
		require.NoError(t, err)
		valores[chaveFluxo] = string(raw)
	}
	return valores
}

// itensDaSessao decodifica a chave de itens persistida.
func itensDaSessao(t *testing.T, valores map[interface{}]interface{}) []cart.ItemCarrinho {
	t.Helper()
	raw, ok := valores[cart.ChaveItens].(string)
	if !ok {
		return nil
	}
	var itens []cart.ItemCarrinho
	require.NoError(t, json.Unmarshal([]byte(raw), &itens))
	return itens
}

// corpoJSON decodifica o corpo da resposta num mapa genérico.
func corpoJSON(t *testing.T, corpo []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(corpo, &out))
	return out
}
