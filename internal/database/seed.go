package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

// SeedLojista garante a conta administrativa padrão da loja.
func SeedLojista() {
	var lojista model.Lojista
	result := DB.Where("email = ?", "lojista@caldosesopascg.com").First(&lojista)

	if result.Error != nil && result.Error == gorm.ErrRecordNotFound {
		log.Println("Usuário lojista não encontrado, criando um novo...")

		senhaHash, err := bcrypt.GenerateFromPassword([]byte("senhaforte123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Falha ao criar hash da senha do lojista: %v", err)
		}

		novo := model.Lojista{
			Nome:      "Lojista Principal",
			Email:     "lojista@caldosesopascg.com",
			SenhaHash: string(senhaHash),
			Tipo:      model.RoleLojista,
		}

		if err := DB.Create(&novo).Error; err != nil {
			log.Fatalf("Falha ao criar o usuário lojista: %v", err)
		}
		log.Println("Usuário lojista criado com sucesso.")
	} else {
		log.Println("Usuário lojista já existe.")
	}
}

// SeedProdutos popula o cardápio inicial quando o catálogo está vazio.
// Preços em centavos.
func SeedProdutos() {
	var count int64
	if err := DB.Model(&model.Produto{}).Count(&count).Error; err != nil {
		log.Fatalf("Falha ao verificar o catálogo: %v", err)
	}
	if count > 0 {
		log.Println("Catálogo já populado.")
		return
	}

	produtos := []model.Produto{
		{
			Nome: "Caldo de Frango", Descricao: "Caldo cremoso de frango desfiado com batata e cheiro-verde.",
			Disponivel: true, Ordem: 1, ImagemURL: "/static/images/caldo-frango.jpg",
			Variacoes: []model.Variacao{
				{Tamanho: "P", TamanhoML: 350, PrecoCentavos: 1200},
				{Tamanho: "M", TamanhoML: 500, PrecoCentavos: 1700},
				{Tamanho: "G", TamanhoML: 750, PrecoCentavos: 2200},
			},
		},
		{
			Nome: "Caldo de Charque", Descricao: "Caldo de charque com macaxeira e manteiga de garrafa.",
			Disponivel: true, Ordem: 2, ImagemURL: "/static/images/caldo-charque.jpg",
			Variacoes: []model.Variacao{
				{Tamanho: "P", TamanhoML: 350, PrecoCentavos: 1400},
				{Tamanho: "M", TamanhoML: 500, PrecoCentavos: 1900},
				{Tamanho: "G", TamanhoML: 750, PrecoCentavos: 2400},
			},
		},
		{
			Nome: "Sopa de Legumes", Descricao: "Sopa leve de legumes da estação com macarrão.",
			Disponivel: true, Ordem: 3, ImagemURL: "/static/images/sopa-legumes.jpg",
			Variacoes: []model.Variacao{
				{Tamanho: "M", TamanhoML: 500, PrecoCentavos: 1500},
				{Tamanho: "G", TamanhoML: 750, PrecoCentavos: 2000},
			},
		},
		{
			Nome: "Creme de Abóbora", Descricao: "Creme de abóbora com gengibre e carne de sol desfiada.",
			Disponivel: true, Ordem: 4, ImagemURL: "/static/images/creme-abobora.jpg",
			Variacoes: []model.Variacao{
				{Tamanho: "M", TamanhoML: 500, PrecoCentavos: 1800},
				{Tamanho: "G", TamanhoML: 750, PrecoCentavos: 2300},
			},
		},
	}

	for _, p := range produtos {
		if err := DB.Create(&p).Error; err != nil {
			log.Fatalf("Falha ao popular o produto %s: %v", p.Nome, err)
		}
	}
	log.Printf("Catálogo populado com %d produtos.\n", len(produtos))
}
