package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

func montarRotasAuth(t *testing.T) (*gin.Engine, *sessions.CookieStore) {
	t.Helper()
	abrirBancoDeTeste(t)
	router, store := novoRouterDeTeste()
	h := &AuthHandler{Store: store}
	router.POST("/lojista/login", h.Login)
	router.POST("/lojista/logout", h.Logout)

	protegido := router.Group("/lojista")
	protegido.Use(h.AuthRequired(), h.RoleRequired(model.RoleLojista))
	protegido.GET("/perfil", func(c *gin.Context) {
		lojista := c.MustGet("lojista").(model.Lojista)
		c.JSON(http.StatusOK, gin.H{"success": true, "nome": lojista.Nome})
	})
	return router, store
}

func criarLojistaDeTeste(t *testing.T, senha string) model.Lojista {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	lojista := model.Lojista{
		Nome:      "Dona Inês",
		Email:     "lojista@caldosesopascg.com",
		SenhaHash: string(hash),
		Tipo:      model.RoleLojista,
	}
	require.NoError(t, database.DB.Create(&lojista).Error)
	return lojista
}

func TestLogin(t *testing.T) {
	t.Run("credenciais corretas abrem a sessão", func(t *testing.T) {
		router, _ := montarRotasAuth(t)
		criarLojistaDeTeste(t, "senha-forte")

		recorder := postJSON(router, "/lojista/login", `{"email":"lojista@caldosesopascg.com","senha":"senha-forte"}`)

		require.Equal(t, http.StatusOK, recorder.Code)
		resposta := corpoJSON(t, recorder.Body.Bytes())
		assert.Equal(t, "Dona Inês", resposta["nome"])

		// A sessão aberta dá acesso às rotas protegidas.
		cookie := recorder.Result().Cookies()[0]
		perfil := getRota(router, "/lojista/perfil", cookie)
		assert.Equal(t, http.StatusOK, perfil.Code)
	})

	t.Run("senha errada responde 401", func(t *testing.T) {
		router, _ := montarRotasAuth(t)
		criarLojistaDeTeste(t, "senha-forte")

		recorder := postJSON(router, "/lojista/login", `{"email":"lojista@caldosesopascg.com","senha":"senha-errada"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("e-mail desconhecido responde 401", func(t *testing.T) {
		router, _ := montarRotasAuth(t)

		recorder := postJSON(router, "/lojista/login", `{"email":"ninguem@caldosesopascg.com","senha":"tanto-faz"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRotaProtegidaSemLogin(t *testing.T) {
	router, _ := montarRotasAuth(t)

	recorder := getRota(router, "/lojista/perfil")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogoutFechaASessao(t *testing.T) {
	router, _ := montarRotasAuth(t)
	criarLojistaDeTeste(t, "senha-forte")

	login := postJSON(router, "/lojista/login", `{"email":"lojista@caldosesopascg.com","senha":"senha-forte"}`)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	logout := postJSON(router, "/lojista/logout", ``, cookie)
	require.Equal(t, http.StatusOK, logout.Code)
	cookieDepois := logout.Result().Cookies()[0]

	perfil := getRota(router, "/lojista/perfil", cookieDepois)
	assert.Equal(t, http.StatusUnauthorized, perfil.Code)
}
