// Package lookup cuida da resolução de endereço por CEP: limpeza e
// validação do código, a trava de cidade atendida e o disparo automático
// com debounce usado pelo campo de CEP do checkout.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iagomauricioo/caldosesopacg/internal/apiclient"
	"github.com/iagomauricioo/caldosesopacg/internal/model"
)

var ErrCEPInvalido = errors.New("CEP deve ter exatamente 8 dígitos")

// ErroCidadeNaoAtendida: o CEP existe mas resolve para fora da área de
// entrega; nenhum campo de endereço é aproveitado.
type ErroCidadeNaoAtendida struct {
	Cidade string
}

func (e *ErroCidadeNaoAtendida) Error() string {
	return fmt.Sprintf("ainda não entregamos em %s", e.Cidade)
}

// LimparCEP remove tudo que não é dígito.
func LimparCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidarCEP limpa e exige exatamente 8 dígitos.
func ValidarCEP(cep string) (string, error) {
	limpo := LimparCEP(cep)
	if len(limpo) != 8 {
		return "", ErrCEPInvalido
	}
	return limpo, nil
}

// ParaEndereco converte o resultado da consulta no endereço de entrega,
// aplicando a trava de cidade. Com coordenadas presentes o endereço sai
// não confirmado (o cliente precisa confirmar no mapa); sem coordenadas é
// confirmado de imediato.
func ParaEndereco(r *apiclient.ResultadoCEP, cidadeAtendida string) (model.Endereco, error) {
	if !strings.EqualFold(strings.TrimSpace(r.Cidade), cidadeAtendida) {
		return model.Endereco{}, &ErroCidadeNaoAtendida{Cidade: r.Cidade}
	}
	return model.Endereco{
		CEP:        r.CEP,
		Cidade:     r.Cidade,
		Bairro:     r.Bairro,
		Rua:        r.Rua,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Confirmado: !r.TemCoordenadas(),
	}, nil
}
