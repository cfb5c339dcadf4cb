package handler

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
	"github.com/iagomauricioo/caldosesopacg/internal/cart"
	"github.com/iagomauricioo/caldosesopacg/internal/checkout"
	"github.com/iagomauricioo/caldosesopacg/internal/config"
)

const (
	chaveFluxo    = "checkout_fluxo"
	chaveSessaoID = "sessao_id"
)

// obterSessao busca a sessão do visitante no cookie da loja.
func obterSessao(store *sessions.CookieStore, c *gin.Context) *sessions.Session {
	session, _ := store.Get(c.Request, cart.NomeSessao)
	return session
}

// sessaoID devolve o identificador estável da sessão, criando um novo na
// primeira visita (chaveia as cobranças PIX em andamento).
func sessaoID(session *sessions.Session) string {
	if id, ok := session.Values[chaveSessaoID].(string); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	session.Values[chaveSessaoID] = id
	return id
}

// carregarFluxo reidrata o fluxo de checkout da sessão; ausente ou
// corrompido começa do zero, na etapa de cliente.
func carregarFluxo(session *sessions.Session) *checkout.Fluxo {
	raw, ok := session.Values[chaveFluxo].(string)
	if !ok {
		return checkout.NovoFluxo()
	}
	var fluxo checkout.Fluxo
	if err := json.Unmarshal([]byte(raw), &fluxo); err != nil {
		return checkout.NovoFluxo()
	}
	return &fluxo
}

func salvarFluxo(session *sessions.Session, fluxo *checkout.Fluxo) {
	raw, err := json.Marshal(fluxo)
	if err != nil {
		return
	}
	session.Values[chaveFluxo] = string(raw)
}

func apagarFluxo(session *sessions.Session) {
	delete(session.Values, chaveFluxo)
}

// mensagemDeErro converte os erros do cliente da API em mensagens para o
// usuário, seguindo a taxonomia rede / status / rejeição de domínio.
func mensagemDeErro(err error) string {
	switch e := err.(type) {
	case *apiclient.ErroTransporte:
		return "Não conseguimos falar com o servidor. Verifique sua conexão e tente de novo."
	case *apiclient.ErroHTTP:
		if e.Mensagem != "" {
			return e.Mensagem
		}
		return "O servidor não conseguiu atender o pedido agora. Tente de novo."
	case *apiclient.ErroDominio:
		if e.Mensagem != "" {
			return e.Mensagem
		}
		return "A operação foi recusada pelo servidor."
	default:
		return "Algo deu errado. Tente de novo."
	}
}

// registrarErro loga a falha para diagnóstico sem vazar detalhes na resposta.
func registrarErro(contexto string, err error) {
	fmt.Printf("ERRO %s: %v\n", contexto, err)
}

// carrinhoDaSessao é o atalho usado por todos os handlers que leem o
// carrinho.
func carrinhoDaSessao(store *sessions.CookieStore, cfg *config.Config, c *gin.Context) (*sessions.Session, *cart.Carrinho) {
	session := obterSessao(store, c)
	return session, cart.Carregar(session, cfg.TaxaEntregaCentavos)
}
