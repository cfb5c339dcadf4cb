package model

import (
	"time"

	"gorm.io/gorm"
)

const RoleLojista = "lojista"

// Lojista é a conta administrativa que acompanha os pedidos e avança o
// status de entrega. Clientes não têm conta: o checkout os identifica
// pelo telefone junto à API.
type Lojista struct {
	ID        uint           `gorm:"primaryKey"`
	Nome      string         `gorm:"not null"`
	Email     string         `gorm:"unique;not null"`
	SenhaHash string         `gorm:"not null"`
	Tipo      string         `gorm:"default:'lojista';not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
