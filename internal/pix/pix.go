// Package pix guarda as cobranças PIX geradas enquanto o cliente não
// paga: cada QR Code vale por 300 segundos e, vencido o prazo, é
// descartado e precisa ser gerado de novo.
package pix

import (
	"context"
	"sync"
	"time"
)

// Cobranca é um QR Code PIX emitido para o total de um pedido.
type Cobranca struct {
	ID            string    `json:"id"`
	Payload       string    `json:"payload"`
	EncodedImage  string    `json:"encoded_image"`
	ValorCentavos int64     `json:"valor_centavos"`
	ExpiraEm      time.Time `json:"expira_em"`
}

// RestanteSegundos devolve quantos segundos faltam para a cobrança vencer,
// nunca negativo.
func (c *Cobranca) RestanteSegundos(agora time.Time) int {
	restante := int(c.ExpiraEm.Sub(agora) / time.Second)
	if restante < 0 {
		return 0
	}
	return restante
}

// Store mantém as cobranças vivas, uma por sessão de checkout. O relógio é
// injetável para os testes dirigirem a contagem regressiva tick a tick.
type Store struct {
	mu        sync.Mutex
	agora     func() time.Time
	cobrancas map[string]*Cobranca
}

// NovoStore cria o store com o relógio de verdade.
func NovoStore() *Store {
	return NovoStoreComRelogio(time.Now)
}

// NovoStoreComRelogio cria o store com um relógio customizado.
func NovoStoreComRelogio(agora func() time.Time) *Store {
	return &Store{agora: agora, cobrancas: make(map[string]*Cobranca)}
}

// Guardar registra a cobrança recém-gerada para a sessão, substituindo
// qualquer cobrança anterior.
func (s *Store) Guardar(sessao string, c Cobranca) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cobrancas[sessao] = &c
}

// Buscar devolve a cobrança viva da sessão e os segundos restantes.
// Cobrança vencida é descartada na hora e volta como inexistente.
func (s *Store) Buscar(sessao string) (*Cobranca, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cobrancas[sessao]
	if !ok {
		return nil, 0, false
	}
	restante := c.RestanteSegundos(s.agora())
	if restante <= 0 {
		delete(s.cobrancas, sessao)
		return nil, 0, false
	}
	copia := *c
	return &copia, restante, true
}

// Descartar remove a cobrança da sessão (pagamento concluído ou cancelado).
func (s *Store) Descartar(sessao string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cobrancas, sessao)
}

// Vigiar roda o varredor de cobranças vencidas a cada intervalo (um
// segundo em produção) até o contexto encerrar.
func (s *Store) Vigiar(ctx context.Context, intervalo time.Duration) {
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.varrer()
		}
	}
}

func (s *Store) varrer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	agora := s.agora()
	for sessao, c := range s.cobrancas {
		if c.RestanteSegundos(agora) <= 0 {
			delete(s.cobrancas, sessao)
		}
	}
}
