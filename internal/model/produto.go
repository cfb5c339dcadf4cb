package model

import (
	"time"

	"gorm.io/gorm"
)

// Produto representa um item do cardápio (caldo, sopa, acompanhamento).
// Do ponto de vista da vitrine ele é somente leitura: é buscado, nunca
// alterado localmente.
type Produto struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Nome       string         `gorm:"not null;size:100" json:"nome"`
	Descricao  string         `gorm:"type:text" json:"descricao"`
	Disponivel bool           `gorm:"default:true" json:"disponivel"`
	Ordem      int            `gorm:"default:0" json:"ordem"`
	ImagemURL  string         `json:"imagem_url"`
	Variacoes  []Variacao     `gorm:"foreignKey:ProdutoID" json:"variacoes"`
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Variacao é um tamanho vendável de um produto. A chave de negócio é
// (ProdutoID, TamanhoML); preço sempre em centavos para evitar ponto
// flutuante em dinheiro.
type Variacao struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ProdutoID     uint   `gorm:"not null;index:idx_produto_tamanho,unique" json:"produto_id"`
	Tamanho       string `gorm:"not null;size:20" json:"tamanho"`
	TamanhoML     int    `gorm:"not null;index:idx_produto_tamanho,unique" json:"tamanho_ml"`
	PrecoCentavos int64  `gorm:"not null" json:"preco_centavos"`
}
