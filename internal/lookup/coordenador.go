package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
)

// BuscadorCEP é o pedaço do cliente da API que o coordenador usa.
type BuscadorCEP interface {
	BuscarCEP(ctx context.Context, cep string) (*apiclient.ResultadoCEP, error)
}

// Entrega recebe o resultado (ou erro) da consulta mais recente. Respostas
// de consultas ultrapassadas nunca chegam aqui.
type Entrega func(cep string, resultado *apiclient.ResultadoCEP, err error)

// Coordenador dispara a consulta de CEP automaticamente: só quando o CEP
// limpo atinge exatamente 8 dígitos, após um curto atraso, cancelando a
// consulta pendente se o campo mudar antes do disparo. Cada consulta leva
// um número de sequência crescente; respostas que não são da última
// sequência emitida são descartadas, para uma resposta atrasada nunca
// sobrescrever um valor mais novo.
type Coordenador struct {
	mu       sync.Mutex
	buscador BuscadorCEP
	atraso   time.Duration
	entrega  Entrega

	seq   uint64
	timer *time.Timer
}

// NovoCoordenador cria o coordenador com o atraso de debounce do campo.
func NovoCoordenador(buscador BuscadorCEP, atraso time.Duration, entrega Entrega) *Coordenador {
	return &Coordenador{buscador: buscador, atraso: atraso, entrega: entrega}
}

// Digitar registra o valor atual do campo de CEP. Qualquer mudança cancela
// a consulta pendente; um CEP completo agenda uma nova.
func (c *Coordenador) Digitar(ctx context.Context, cep string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	limpo, err := ValidarCEP(cep)
	if err != nil {
		return
	}

	seq := c.seq
	c.timer = time.AfterFunc(c.atraso, func() {
		c.consultar(ctx, seq, limpo)
	})
}

// Cancelar descarta a consulta pendente e invalida respostas em voo
// (usado ao desmontar o formulário).
func (c *Coordenador) Cancelar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Coordenador) consultar(ctx context.Context, seq uint64, cep string) {
	resultado, err := c.buscador.BuscarCEP(ctx, cep)

	c.mu.Lock()
	atual := c.seq == seq
	c.mu.Unlock()
	if !atual {
		// Resposta de uma consulta ultrapassada: descarta.
		return
	}
	c.entrega(cep, resultado, err)
}
