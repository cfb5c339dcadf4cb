package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iagomauricioo/caldosesopacg/internal/cart"
	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// AuthHandler autentica o lojista que acompanha os pedidos. Clientes não
// têm conta: o checkout os identifica pelo telefone junto à API.
type AuthHandler struct {
	Store *sessions.CookieStore
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// Login valida as credenciais do lojista e abre a sessão administrativa.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Informe e-mail e senha."})
		return
	}

	var lojista model.Lojista
	result := database.DB.Where("email = ?", req.Email).First(&lojista)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "E-mail ou senha inválidos."})
			return
		}
		registrarErro("buscar lojista", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Ocorreu um erro interno. Tente novamente."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lojista.SenhaHash), []byte(req.Senha)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "E-mail ou senha inválidos."})
		return
	}

	session, _ := h.Store.Get(c.Request, cart.NomeSessao)
	session.Values["lojistaID"] = lojista.ID
	if err := session.Save(c.Request, c.Writer); err != nil {
		fmt.Printf("ERRO ao salvar sessão de login: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao iniciar a sessão. Tente novamente."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "nome": lojista.Nome})
}

// Logout encerra a sessão administrativa.
func (h *AuthHandler) Logout(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, cart.NomeSessao)
	delete(session.Values, "lojistaID")
	if err := session.Save(c.Request, c.Writer); err != nil {
		fmt.Printf("Erro ao salvar sessão de logout: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao fazer logout."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthRequired barra rotas administrativas sem lojista logado.
func (h *AuthHandler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := h.Store.Get(c.Request, cart.NomeSessao)
		lojistaID, ok := session.Values["lojistaID"].(uint)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Faça login para continuar."})
			c.Abort()
			return
		}

		var lojista model.Lojista
		if err := database.DB.First(&lojista, lojistaID).Error; err != nil {
			delete(session.Values, "lojistaID")
			session.Save(c.Request, c.Writer)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Sessão expirada. Faça login de novo."})
			c.Abort()
			return
		}

		c.Set("lojista", lojista)
		c.Next()
	}
}

// RoleRequired confere o papel da conta logada.
func (h *AuthHandler) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, exists := c.Get("lojista")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Faça login para continuar."})
			c.Abort()
			return
		}
		lojista := data.(model.Lojista)
		if lojista.Tipo != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Acesso negado."})
			c.Abort()
			return
		}
		c.Next()
	}
}
