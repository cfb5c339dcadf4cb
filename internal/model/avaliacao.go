package model

import "time"

// Avaliacao é uma avaliação de produto deixada por um cliente na vitrine.
type Avaliacao struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProdutoID   uint      `gorm:"not null;index" json:"produto_id"`
	NomeCliente string    `gorm:"not null;size:100" json:"nome_cliente"`
	Nota        int       `gorm:"not null" json:"nota"`
	Comentario  string    `gorm:"type:text" json:"comentario"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotaValida aceita somente notas de 1 a 5 estrelas.
func NotaValida(nota int) bool {
	return nota >= 1 && nota <= 5
}
