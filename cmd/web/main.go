package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
	"github.com/iagomauricioo/caldosesopacg/internal/config"
	"github.com/iagomauricioo/caldosesopacg/internal/database"
	"github.com/iagomauricioo/caldosesopacg/internal/handler"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
	"github.com/iagomauricioo/caldosesopacg/internal/pix"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando variáveis do ambiente.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro na configuração: ", err)
	}

	database.ConnectDB(cfg.DatabaseURL)
	database.SeedLojista()
	database.SeedProdutos()

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	api := apiclient.New(cfg.APIBaseURL, cfg.APIKey)

	pixStore := pix.NovoStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pixStore.Vigiar(ctx, time.Second)

	router := gin.Default()

	vitrine := &handler.VitrineHandler{}
	avaliacoes := &handler.AvaliacaoHandler{}
	carrinho := &handler.CartHandler{Store: store, Cfg: cfg}
	checkoutH := &handler.CheckoutHandler{Store: store, Cfg: cfg, API: api}
	pagamento := &handler.PaymentHandler{Store: store, Cfg: cfg, API: api, Pix: pixStore}
	pedidos := &handler.PedidoHandler{Store: store, API: api}
	auth := &handler.AuthHandler{Store: store}

	// Vitrine
	router.GET("/produtos", vitrine.ListarProdutos)
	router.GET("/produtos/:id", vitrine.BuscarProduto)
	router.GET("/produtos/:id/avaliacoes", avaliacoes.ListarAvaliacoes)
	router.POST("/produtos/:id/avaliacoes", avaliacoes.CriarAvaliacao)

	// Carrinho
	router.GET("/carrinho", carrinho.ResumoCarrinho)
	router.POST("/carrinho/adicionar", carrinho.AdicionarAoCarrinho)
	router.POST("/carrinho/remover", carrinho.RemoverDoCarrinho)
	router.POST("/carrinho/diminuir", carrinho.DiminuirQuantidade)
	router.POST("/carrinho/quantidade", carrinho.DefinirQuantidade)
	router.POST("/carrinho/limpar", carrinho.LimparCarrinho)

	// Checkout
	router.GET("/checkout/etapa", checkoutH.Etapa)
	router.POST("/checkout/avancar", checkoutH.Avancar)
	router.POST("/checkout/voltar", checkoutH.Voltar)
	router.POST("/checkout/cliente", checkoutH.IdentificarCliente)
	router.POST("/checkout/cliente/cadastro", checkoutH.CadastrarCliente)
	router.GET("/checkout/cep/:cep", checkoutH.BuscarCEP)
	router.POST("/checkout/endereco", checkoutH.DefinirEndereco)
	router.POST("/checkout/pagamento", checkoutH.DefinirPagamento)

	// Pagamento
	router.POST("/pagamento/pix", pagamento.PagarComPix)
	router.GET("/pagamento/pix/status", pagamento.StatusPix)
	router.POST("/pagamento/pix/regenerar", pagamento.RegenerarPix)
	router.POST("/pagamento/cartao", pagamento.PagarComCartao)
	router.POST("/pagamento/dinheiro", pagamento.PagarComDinheiro)

	// Acompanhamento de pedidos
	router.GET("/pedidos", pedidos.ListarPedidos)

	// Painel do lojista
	router.POST("/lojista/login", auth.Login)
	router.POST("/lojista/logout", auth.Logout)
	lojista := router.Group("/lojista", auth.AuthRequired(), auth.RoleRequired(model.RoleLojista))
	{
		lojista.GET("/pedidos", pedidos.ListarPedidos)
		lojista.POST("/pedidos/:id/avancar-status", pedidos.AvancarStatus)
		lojista.POST("/pedidos/:id/cancelar", pedidos.CancelarPedido)
	}

	log.Printf("Servidor rodando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Erro ao subir o servidor: ", err)
	}
}
