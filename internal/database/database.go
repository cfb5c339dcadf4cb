package database

import (
	"fmt"
	"log"

	"github.com/iagomauricioo/caldosesopacg/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB abre a conexão com o Postgres a partir da URL completa e roda
// as migrações dos modelos locais (catálogo, avaliações e lojista — pedidos
// e clientes vivem na API da loja).
func ConnectDB(dsn string) {
	var err error

	if dsn == "" {
		log.Fatal("DATABASE_URL não encontrado no .env")
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Falha ao conectar ao banco de dados usando URL: %v", err)
	}

	fmt.Println("Conexão com o banco de dados estabelecida com sucesso.")

	fmt.Println("Executando migrações do banco de dados...")
	if err := Migrate(DB); err != nil {
		log.Fatal("Falha ao executar migrações:", err)
	}
	fmt.Println("Migrações concluídas com sucesso.")
}

// Migrate roda o AutoMigrate dos modelos locais. Separado de ConnectDB para
// os testes migrarem um banco em memória.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Produto{}, &model.Variacao{}, &model.Avaliacao{}, &model.Lojista{},
	)
}
