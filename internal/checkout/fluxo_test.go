package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFluxoComecaNaEtapaDeCliente(t *testing.T) {
	fluxo := NovoFluxo()
	assert.Equal(t, EtapaCliente, fluxo.Etapa)
	assert.Empty(t, fluxo.ClienteID)
}

func TestAvancarBloqueadoSemCliente(t *testing.T) {
	fluxo := NovoFluxo()

	assert.False(t, fluxo.Avancar(), "sem cliente resolvido não sai da primeira etapa")
	assert.Equal(t, EtapaCliente, fluxo.Etapa)
}

func TestAvancarLiberadoComCliente(t *testing.T) {
	fluxo := NovoFluxo()
	fluxo.ClienteID = "cli_123"

	assert.True(t, fluxo.Avancar())
	assert.Equal(t, EtapaPagamento, fluxo.Etapa)
}

func TestAvancarDePagamentoNaoTemGuarda(t *testing.T) {
	fluxo := &Fluxo{Etapa: EtapaPagamento, ClienteID: "cli_123"}

	assert.True(t, fluxo.Avancar())
	assert.Equal(t, EtapaConfirmacao, fluxo.Etapa)
}

func TestAvancarNoFimEhNoOp(t *testing.T) {
	fluxo := &Fluxo{Etapa: EtapaConfirmacao, ClienteID: "cli_123"}

	assert.False(t, fluxo.Avancar())
	assert.Equal(t, EtapaConfirmacao, fluxo.Etapa)
}

func TestVoltarNoInicioEhNoOp(t *testing.T) {
	fluxo := NovoFluxo()
	fluxo.Voltar()
	assert.Equal(t, EtapaCliente, fluxo.Etapa)
}

func TestAvancarEVoltarNuncaSaemDosLimites(t *testing.T) {
	fluxo := NovoFluxo()
	fluxo.ClienteID = "cli_123"

	for i := 0; i < 10; i++ {
		fluxo.Avancar()
	}
	assert.Equal(t, EtapaConfirmacao, fluxo.Etapa)

	for i := 0; i < 10; i++ {
		fluxo.Voltar()
	}
	assert.Equal(t, EtapaCliente, fluxo.Etapa)
}

func TestConcluirLevaDiretoAConfirmacao(t *testing.T) {
	// Gatilho externo de um pagamento bem-sucedido, não passa pela guarda.
	fluxo := NovoFluxo()
	fluxo.Concluir()
	assert.Equal(t, EtapaConfirmacao, fluxo.Etapa)
}

func TestNomesDasEtapas(t *testing.T) {
	assert.Equal(t, "cliente", EtapaCliente.String())
	assert.Equal(t, "pagamento", EtapaPagamento.String())
	assert.Equal(t, "confirmacao", EtapaConfirmacao.String())
}
