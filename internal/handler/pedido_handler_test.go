package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
)

func montarRotasPedido(t *testing.T, api http.HandlerFunc) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	router, store := novoRouterDeTeste()
	h := &PedidoHandler{Store: store, API: apiclient.New(srv.URL, "token-teste")}
	router.GET("/pedidos", h.ListarPedidos)
	router.PUT("/pedidos/:id/avancar", h.AvancarStatus)
	router.PUT("/pedidos/:id/cancelar", h.CancelarPedido)
	return router
}

func putJSON(router *gin.Engine, caminho, corpo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, caminho, bytes.NewBufferString(corpo))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestListarPedidosDoAcompanhamento(t *testing.T) {
	router := montarRotasPedido(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pedidos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"pedidos":[{"id":"ped_1","status":"RECEBIDO"}]}}`))
	})

	recorder := getRota(router, "/pedidos")

	require.Equal(t, http.StatusOK, recorder.Code)
	resposta := corpoJSON(t, recorder.Body.Bytes())
	pedidos := resposta["pedidos"].([]interface{})
	require.Len(t, pedidos, 1)
}

func TestAvancarStatus(t *testing.T) {
	t.Run("solicita o próximo status linear à API", func(t *testing.T) {
		router := montarRotasPedido(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/pedidos/ped_1/status", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "EM_PREPARO", body["status"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"data":{"id":"ped_1","status":"EM_PREPARO"}}`))
		})

		recorder := putJSON(router, "/pedidos/ped_1/avancar", `{"status_atual":"RECEBIDO"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		resposta := corpoJSON(t, recorder.Body.Bytes())
		pedido := resposta["pedido"].(map[string]interface{})
		assert.Equal(t, "EM_PREPARO", pedido["status"])
	})

	t.Run("pedido entregue não tem próximo status", func(t *testing.T) {
		chamada := false
		router := montarRotasPedido(t, func(w http.ResponseWriter, r *http.Request) { chamada = true })

		recorder := putJSON(router, "/pedidos/ped_1/avancar", `{"status_atual":"ENTREGUE"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.False(t, chamada, "fim de fluxo não chega a consultar a API")
	})

	t.Run("sem status atual responde 400", func(t *testing.T) {
		router := montarRotasPedido(t, func(w http.ResponseWriter, r *http.Request) {})
		recorder := putJSON(router, "/pedidos/ped_1/avancar", `{}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCancelarPedido(t *testing.T) {
	router := montarRotasPedido(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CANCELADO", body["status"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":"ped_1","status":"CANCELADO"}}`))
	})

	recorder := putJSON(router, "/pedidos/ped_1/cancelar", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	resposta := corpoJSON(t, recorder.Body.Bytes())
	pedido := resposta["pedido"].(map[string]interface{})
	assert.Equal(t, "CANCELADO", pedido["status"])
}
